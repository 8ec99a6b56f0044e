package messages

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/serptools/serptools/sterrors"
)

// Level classifies log messages by severity. Levels are ordered; a handler
// configured at LevelWarn receives warn, error, and critical messages.
// The zero value is LevelDebug, so a zero-configured handler captures
// everything.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
)

// levelNames maps the canonical spelling of each level.
var levelNames = []string{"debug", "info", "warn", "error", "critical"}

// String returns the lower-case level name.
func (l Level) String() string {
	if l < LevelDebug || l > LevelCritical {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel parses a verbosity name into a Level. Matching is
// case-insensitive and accepts "warning" for LevelWarn. Unknown names fail
// with a *sterrors.LookupError listing the valid levels.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	default:
		return LevelDebug, &sterrors.LookupError{Key: s, Available: levelNames}
	}
}

// slogLevel maps Level onto slog's scale; critical lands above
// slog.LevelError.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}
