package records

import "regexp"

// Line formats produced by SERPENT result files. The matchers return the
// captured groups without converting them; numeric bodies go through
// Str2Vec separately.
var (
	strRecord    = regexp.MustCompile(`([A-Z_]+).*'(.*)'`)
	vecRecord    = regexp.MustCompile(`([A-Z_]+).*=\s+\[\s*([0-9-\+\.Ee ]+)\]`)
	scalarRecord = regexp.MustCompile(`([A-Z_]+).*=\s+([0-9-\+Ee\.]+)`)
	firstWord    = regexp.MustCompile(`^\w+`)
)

// MatchStrRecord matches a quoted string record such as
//
//	VERSION                   (idx = [1:  14])  = 'Serpent 2.1.32'
//
// returning the variable name and the quoted value.
func MatchStrRecord(line string) (name, value string, ok bool) {
	m := strRecord.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// MatchVecRecord matches a bracketed vector record such as
//
//	INF_KINF                  (idx = [1:   2])  = [ 1.29362E+00 0.00087 ]
//
// returning the variable name and the raw bracket body, ready for Str2Vec.
func MatchVecRecord(line string) (name, body string, ok bool) {
	m := vecRecord.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// MatchScalarRecord matches a bare scalar record such as
//
//	TOT_CPU_TIME              (idx = 1)  = 7.0787
//
// returning the variable name and the raw scalar token.
func MatchScalarRecord(line string) (name, value string, ok bool) {
	m := scalarRecord.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// FirstWord returns the leading word of line, or "" when the line does not
// start with one.
func FirstWord(line string) string {
	return firstWord.FindString(line)
}
