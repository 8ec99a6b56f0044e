package logtest

import (
	"errors"

	"github.com/stretchr/testify/suite"

	"github.com/serptools/serptools/messages"
	"github.com/serptools/serptools/sterrors"
)

// Suite is a testify suite that attaches a log capture before each test and
// detaches it afterwards, so individual test bodies can query MsgInLogs
// without managing the lifecycle.
type Suite struct {
	suite.Suite
	Capture

	// CaptureLevel is the minimum severity captured for each test. The zero
	// value captures everything.
	CaptureLevel messages.Level
}

// SetupTest attaches a fresh capture. Suites that override SetupTest must
// call this one.
func (s *Suite) SetupTest() {
	s.Attach(s.CaptureLevel)
}

// TearDownTest restores the handlers displaced in SetupTest. Suites that
// override TearDownTest must call this one.
func (s *Suite) TearDownTest() {
	s.Require().NoError(s.Detach())
}

// RequireMsgInLogs fails the test unless msg was captured at level.
func (s *Suite) RequireMsgInLogs(level messages.Level, msg string, partial bool) {
	s.T().Helper()
	found, err := s.MsgInLogs(level, msg, partial)
	s.Require().NoError(err)
	s.Require().True(found, "message %q not captured at %s", msg, level)
}

// RequireMsgNotInLogs fails the test if msg was captured at level. A level
// with no captured messages at all passes.
func (s *Suite) RequireMsgNotInLogs(level messages.Level, msg string, partial bool) {
	s.T().Helper()
	found, err := s.MsgInLogs(level, msg, partial)
	if err != nil {
		var lookupErr *sterrors.LookupError
		if errors.As(err, &lookupErr) {
			return
		}
		s.Require().NoError(err)
	}
	s.Require().False(found, "message %q unexpectedly captured at %s", msg, level)
}
