package messages

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler receives every message routed through the package-level logger
// whose level passes Enabled.
type Handler interface {
	// Handle records or emits one formatted message.
	Handle(level Level, msg string)

	// Enabled reports whether the handler wants messages at level.
	Enabled(level Level) bool
}

var (
	mu       sync.Mutex
	handlers = []Handler{NewSlogHandler(slog.New(slog.NewTextHandler(os.Stderr, nil)), LevelInfo)}
)

// Handlers returns a snapshot of the currently registered handlers.
func Handlers() []Handler {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Handler, len(handlers))
	copy(out, handlers)
	return out
}

// AddHandler registers h with the package-level logger.
func AddHandler(h Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers = append(handlers, h)
}

// RemoveHandler deregisters h. Handlers that were never registered are
// ignored.
func RemoveHandler(h Handler) {
	mu.Lock()
	defer mu.Unlock()
	kept := make([]Handler, 0, len(handlers))
	for _, reg := range handlers {
		if reg != h {
			kept = append(kept, reg)
		}
	}
	handlers = kept
}

// Debug routes a debug message with optional alternating key/value attrs.
func Debug(msg string, attrs ...any) { emit(LevelDebug, msg, attrs) }

// Info routes an info message with optional alternating key/value attrs.
func Info(msg string, attrs ...any) { emit(LevelInfo, msg, attrs) }

// Warn routes a warn message with optional alternating key/value attrs.
func Warn(msg string, attrs ...any) { emit(LevelWarn, msg, attrs) }

// Error routes an error message with optional alternating key/value attrs.
func Error(msg string, attrs ...any) { emit(LevelError, msg, attrs) }

// Critical routes a message above error severity, used for unrecoverable
// reader failures.
func Critical(msg string, attrs ...any) { emit(LevelCritical, msg, attrs) }

func emit(level Level, msg string, attrs []any) {
	formatted := formatMessage(msg, attrs)
	for _, h := range Handlers() {
		if h.Enabled(level) {
			h.Handle(level, formatted)
		}
	}
}

// formatMessage renders attrs in slog text style after the message body. A
// dangling key follows slog's !BADKEY convention.
func formatMessage(msg string, attrs []any) string {
	if len(attrs) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(attrs); i += 2 {
		fmt.Fprintf(&b, " %v=%v", attrs[i], attrs[i+1])
	}
	if len(attrs)%2 != 0 {
		fmt.Fprintf(&b, " !BADKEY=%v", attrs[len(attrs)-1])
	}
	return b.String()
}

// SlogHandler routes messages to a *slog.Logger, the emitting backend for
// normal operation.
type SlogHandler struct {
	logger *slog.Logger
	min    Level
}

// NewSlogHandler wraps logger with a minimum severity. A nil logger uses
// slog.Default().
func NewSlogHandler(logger *slog.Logger, min Level) *SlogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogHandler{logger: logger, min: min}
}

// Handle implements Handler.
func (h *SlogHandler) Handle(level Level, msg string) {
	h.logger.Log(context.Background(), level.slogLevel(), msg)
}

// Enabled implements Handler.
func (h *SlogHandler) Enabled(level Level) bool {
	return level >= h.min
}

// Ensure SlogHandler implements Handler at compile time.
var _ Handler = (*SlogHandler)(nil)
