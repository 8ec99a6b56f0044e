package settings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/serptools/serptools/messages"
	"github.com/serptools/serptools/sterrors"
	"github.com/serptools/serptools/variables"
)

// EnvPrefix namespaces environment overrides, e.g. SERPTOOLS_VERBOSITY=debug.
const EnvPrefix = "SERPTOOLS_"

// SupportedSerpentVersions lists the SERPENT releases the readers understand.
var SupportedSerpentVersions = []string{"2.1.29", "2.1.30", "2.1.31", "2.1.32"}

// Settings is the resolved reader configuration.
type Settings struct {
	// Verbosity is the minimum severity emitted by the messages logger.
	Verbosity string `koanf:"verbosity"`

	Serpent struct {
		// Version selects the variable layout to expect; must be one of
		// SupportedSerpentVersions.
		Version string `koanf:"version"`
	} `koanf:"serpent"`

	XS struct {
		// VariableGroups names the groups expanded when reading
		// group-constant output.
		VariableGroups []string `koanf:"variableGroups"`

		// VariableExtras lists raw SERPENT_STYLE names read in addition to
		// the groups.
		VariableExtras []string `koanf:"variableExtras"`

		// GetInfXS and GetB1XS toggle reading infinite-medium and
		// leakage-corrected cross sections.
		GetInfXS bool `koanf:"getInfXS"`
		GetB1XS  bool `koanf:"getB1XS"`
	} `koanf:"xs"`
}

// Defaults returns the built-in settings values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"verbosity":       "info",
		"serpent.version": "2.1.32",
		"xs.getInfXS":     true,
		"xs.getB1XS":      true,
	}
}

// Load builds Settings by layering defaults, the YAML file at path (skipped
// when path is empty), and SERPTOOLS_ environment overrides, then validating
// the result.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("settings: failed to load defaults: %w", err)
	}

	// 2. Optional settings file
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("settings: error reading %s: %w", path, err)
		}
	}

	// 3. Environment overrides: SERPTOOLS_SERPENT_VERSION -> serpent.version
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("settings: failed to load env vars: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("settings: unable to decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the verbosity name and the SERPENT version.
func (s *Settings) Validate() error {
	if _, err := messages.ParseLevel(s.Verbosity); err != nil {
		return &sterrors.SettingsError{Name: "verbosity", Value: s.Verbosity, Cause: err}
	}
	if !slices.Contains(SupportedSerpentVersions, s.Serpent.Version) {
		return &sterrors.SettingsError{
			Name:    "serpent.version",
			Value:   s.Serpent.Version,
			Message: "supported versions: " + strings.Join(SupportedSerpentVersions, ", "),
		}
	}
	return nil
}

// Level returns the verbosity as a messages.Level. Settings produced by Load
// always carry a valid verbosity; a hand-built value with a bad one falls
// back to info.
func (s *Settings) Level() messages.Level {
	level, err := messages.ParseLevel(s.Verbosity)
	if err != nil {
		return messages.LevelInfo
	}
	return level
}

// ExpandedVariables resolves the configured groups and extras through reg.
func (s *Settings) ExpandedVariables(reg *variables.Registry) []string {
	names := slices.Clone(s.XS.VariableGroups)
	names = append(names, s.XS.VariableExtras...)
	return reg.Expand(names...)
}
