// Package records converts fixed-format textual records from SERPENT output
// files into numeric data.
//
// Import path: github.com/serptools/serptools/records
//
// SERPENT result files are MATLAB-style text: one variable per line, with the
// body either a quoted string, a scalar, or a bracketed vector whose entries
// interleave expected values and relative uncertainties:
//
//	VERSION                   (idx = [1:  14])  = 'Serpent 2.1.32'
//	TOT_CPU_TIME              (idx = 1)         = 7.0787
//	INF_KINF                  (idx = [1:   2])  = [ 1.29362E+00 0.00087 ]
//
// The package provides three layers:
//
//   - Record matchers ([MatchStrRecord], [MatchVecRecord],
//     [MatchScalarRecord], [FirstWord]) that tokenize a line into the
//     variable name and its raw body without converting anything.
//   - Conversion ([Str2Vec], [ParseVec]) from a whitespace-delimited body to
//     a numeric slice.
//   - Value/uncertainty splitting ([SplitValsUncs] and friends) over the
//     interleaved layout, producing [Vector] or [Matrix] views that alias
//     the source storage unless an independent copy is requested.
//
// # Example
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
//	fmt.Printf("%s: k-inf %.5f +/- %.5f\n", name, vals.At(0), uncs.At(0))
package records
