// Package naming translates between the two variable naming conventions used
// around SERPENT output.
//
// Import path: github.com/serptools/serptools/naming
//
// SERPENT writes variables in SERPENT_STYLE (upper case, underscore
// separated); the reader API exposes them in mixedCase (no separators, first
// word lower case, later words capitalized at the first letter only):
//
//	naming.ConvertVariableName("INF_KINF")   // "infKinf"
//	naming.ConvertVariableName("VERSION")    // "version"
//	naming.DeconvertVariableName("infKinf")  // "INF_KINF"
//
// The two functions are not exact inverses. DeconvertVariableName treats
// every upper-case rune as a word boundary, so a mixedCase name with adjacent
// capitals ("microNG") deconverts to "MICRO_N_G", and consecutive underscores
// collapse on the way through ConvertVariableName. Round trips hold for
// canonical SERPENT_STYLE names; both directions keep the behavior the
// readers have always relied on rather than trying to repair the asymmetry.
package naming
