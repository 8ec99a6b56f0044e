package messages

import "slices"

// CaptureHandler stores messages by severity level instead of emitting them
// externally. The logtest package installs one for the duration of a test;
// anything that needs to inspect log output can use it directly.
type CaptureHandler struct {
	min     Level
	records map[Level][]string
}

// NewCaptureHandler returns a handler capturing messages at or above min.
func NewCaptureHandler(min Level) *CaptureHandler {
	return &CaptureHandler{min: min, records: make(map[Level][]string)}
}

// Handle implements Handler.
func (h *CaptureHandler) Handle(level Level, msg string) {
	h.records[level] = append(h.records[level], msg)
}

// Enabled implements Handler.
func (h *CaptureHandler) Enabled(level Level) bool {
	return level >= h.min
}

// Messages returns the ordered messages captured at level. ok is false when
// nothing was ever captured there.
func (h *CaptureHandler) Messages(level Level) (msgs []string, ok bool) {
	msgs, ok = h.records[level]
	return msgs, ok
}

// Levels returns the levels with at least one captured message, ascending.
func (h *CaptureHandler) Levels() []Level {
	out := make([]Level, 0, len(h.records))
	for l := range h.records {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Ensure CaptureHandler implements Handler at compile time.
var _ Handler = (*CaptureHandler)(nil)
