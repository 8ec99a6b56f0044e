// Package serptools provides utilities for working with SERPENT Monte Carlo
// output files.
//
// The library consists of small, independent packages:
//
//   - records: convert fixed-format textual records to numeric vectors and
//     split interleaved value/uncertainty data
//   - naming: translate between SERPENT_STYLE and mixedCase variable names
//   - messages: the leveled logging subsystem used by the readers
//   - logtest: a test harness that captures log output for assertions
//   - variables: variable-group expansion backed by a bundled YAML registry
//   - settings: layered user settings controlling reader behavior
//   - sterrors: structured error types shared by the packages above
//
// # Quick Start
//
// Parse a result-file record:
//
//	import "github.com/serptools/serptools/records"
//
//	name, body, ok := records.MatchVecRecord(line)
//	if !ok {
//		return fmt.Errorf("not a vector record: %s", line)
//	}
//	vec, err := records.Str2Vec(body)
//	if err != nil {
//		return err
//	}
//	vals, uncs := records.SplitValsUncs(vec, false)
//	fmt.Printf("%s = %.5f +/- %.5f\n", name, vals.At(0), uncs.At(0))
//
// Translate a variable name:
//
//	import "github.com/serptools/serptools/naming"
//
//	naming.ConvertVariableName("INF_KINF") // "infKinf"
//	naming.DeconvertVariableName("infKinf") // "INF_KINF"
//
// Capture log output in a test:
//
//	import "github.com/serptools/serptools/logtest"
//
//	type readerSuite struct{ logtest.Suite }
//
//	func (s *readerSuite) TestWarnsOnBadRecord() {
//		messages.Warn("unexpected record")
//		s.RequireMsgInLogs(messages.LevelWarn, "unexpected record", false)
//	}
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/serptools/serptools
package serptools
