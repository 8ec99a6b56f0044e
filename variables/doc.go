// Package variables expands variable-group names into sets of SERPENT
// variables.
//
// Import path: github.com/serptools/serptools/variables
//
// Readers rarely want every variable a result file carries. Groups give the
// common selections short names: asking for "xs-inf" pulls in INF_TOT,
// INF_KINF and friends without spelling them out. The bundled registry
// ships inside the library; a custom registry with the same YAML layout can
// be loaded from disk.
//
//	reg, err := variables.Load()
//	if err != nil {
//		return err
//	}
//	wanted := reg.Expand("xs-inf", "eig", "EXTRA_VARIABLE")
//
// Names that match no group pass through unchanged as raw variable names, so
// groups and one-off variables mix freely in the same request.
package variables
