// Package logtest captures messages logging output for test assertions.
//
// Import path: github.com/serptools/serptools/logtest
//
// [Capture] swaps every handler registered with the messages package for a
// single capturing handler, remembers the displaced handlers, and restores
// them on detach. Because this mutates process-wide state, attach/detach
// cycles must be strictly paired and must not overlap; a dangling attach
// leaves the global logger silenced for everything that runs afterwards.
//
// [Suite] removes the pairing burden: it is a testify suite that attaches in
// SetupTest and detaches in TearDownTest, so test bodies only query:
//
//	type readerSuite struct{ logtest.Suite }
//
//	func (s *readerSuite) TestWarnsOnBadRecord() {
//		messages.Warn("unexpected record")
//		s.RequireMsgInLogs(messages.LevelWarn, "unexpected record", false)
//	}
//
//	func TestReader(t *testing.T) { suite.Run(t, new(readerSuite)) }
//
// Suites that capture logs must not run in parallel with each other.
package logtest
