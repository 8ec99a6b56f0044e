package variables

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"go.yaml.in/yaml/v4"

	"github.com/serptools/serptools/sterrors"
)

//go:embed groups.yaml
var builtinGroups []byte

// Registry maps variable group names to their member SERPENT variables.
type Registry struct {
	groups map[string][]string
}

type groupsFile struct {
	Groups map[string][]string `yaml:"groups"`
}

// Load returns the registry bundled with the library.
func Load() (*Registry, error) {
	return parse(builtinGroups)
}

// LoadFile reads a registry from a YAML file with the same layout as the
// bundled one.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("variables: error reading %s: %w", path, err)
	}
	reg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("variables: %s: %w", path, err)
	}
	return reg, nil
}

func parse(data []byte) (*Registry, error) {
	var f groupsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("variables: failed to parse groups: %w", err)
	}
	return &Registry{groups: f.Groups}, nil
}

// Groups returns the known group names, sorted.
func (r *Registry) Groups() []string {
	out := make([]string, 0, len(r.groups))
	for name := range r.groups {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Members returns the variables in group. Unknown groups fail with a
// *sterrors.LookupError listing the known group names.
func (r *Registry) Members(group string) ([]string, error) {
	members, ok := r.groups[group]
	if !ok {
		return nil, &sterrors.LookupError{Key: group, Available: r.Groups()}
	}
	return slices.Clone(members), nil
}

// Expand resolves a mix of group names and raw SERPENT variable names into a
// sorted, deduplicated variable list. Names that match no group pass through
// as variables.
func (r *Registry) Expand(names ...string) []string {
	seen := make(map[string]struct{})
	for _, name := range names {
		if members, ok := r.groups[name]; ok {
			for _, v := range members {
				seen[v] = struct{}{}
			}
			continue
		}
		seen[name] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
