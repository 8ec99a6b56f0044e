// Package settings carries the user-tunable configuration for the serptools
// readers.
//
// Import path: github.com/serptools/serptools/settings
//
// Settings are layered: built-in defaults, then an optional YAML file, then
// SERPTOOLS_ environment variables, highest layer winning:
//
//	s, err := settings.Load("serptools.yaml")
//	if err != nil {
//		return err
//	}
//	messages.AddHandler(messages.NewSlogHandler(nil, s.Level()))
//
// Environment overrides map underscores to nesting, so
// SERPTOOLS_SERPENT_VERSION=2.1.31 sets serpent.version. List-valued
// settings such as the xs variable groups come from the file layer.
package settings
