package logtest

import (
	"strings"

	"github.com/serptools/serptools/messages"
	"github.com/serptools/serptools/sterrors"
)

// Capture swaps the process-wide logger's handlers for a capturing handler
// for the duration of a test. The zero value is ready to use and starts
// detached.
type Capture struct {
	// Handler is the capturing handler installed by Attach; nil while
	// detached.
	Handler *messages.CaptureHandler

	saved []messages.Handler
}

// Attach installs a fresh capturing handler at min severity, removing every
// currently registered handler and remembering them for Detach.
func (c *Capture) Attach(min messages.Level) {
	c.Handler = messages.NewCaptureHandler(min)
	c.saved = messages.Handlers()
	for _, h := range c.saved {
		messages.RemoveHandler(h)
	}
	messages.AddHandler(c.Handler)
}

// Detach removes the capturing handler, restores the handlers Attach
// displaced, and discards everything captured. It fails with a
// *sterrors.StateError when no capture is attached.
func (c *Capture) Detach() error {
	if c.Handler == nil {
		return &sterrors.StateError{Op: "logtest: detach", Missing: "Attach"}
	}
	messages.RemoveHandler(c.Handler)
	for _, h := range c.saved {
		messages.AddHandler(h)
	}
	c.Handler = nil
	c.saved = nil
	return nil
}

// MsgInLogs reports whether msg was captured at level. With partial set, a
// substring match against any captured message counts; otherwise only exact
// matches do.
//
// It fails with a *sterrors.StateError while detached, and with a
// *sterrors.LookupError when nothing was captured at level; the lookup
// error lists the levels that do have messages.
func (c *Capture) MsgInLogs(level messages.Level, msg string, partial bool) (bool, error) {
	if c.Handler == nil {
		return false, &sterrors.StateError{Op: "logtest: message lookup", Missing: "Attach"}
	}

	logged, ok := c.Handler.Messages(level)
	if !ok {
		levels := c.Handler.Levels()
		available := make([]string, len(levels))
		for i, l := range levels {
			available[i] = l.String()
		}
		return false, &sterrors.LookupError{Key: level.String(), Available: available}
	}

	for _, m := range logged {
		if m == msg || (partial && strings.Contains(m, msg)) {
			return true, nil
		}
	}
	return false, nil
}
