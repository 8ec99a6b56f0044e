package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConvertVariableName returns the mixedCase form of a SERPENT_STYLE variable
// name. The input is split at underscores; the first segment is lower-cased
// whole, every later segment is lower-cased and capitalized at its first
// letter, and the segments are joined with no separator.
//
//	ConvertVariableName("INF_KINF") // "infKinf"
//	ConvertVariableName("VERSION")  // "version"
func ConvertVariableName(variable string) string {
	parts := strings.Split(variable, "_")
	if len(parts) == 1 {
		return strings.ToLower(parts[0])
	}

	// Use golang.org/x/text/cases for the capitalization (strings.Title is
	// deprecated).
	titleCaser := cases.Title(language.English)

	var b strings.Builder
	b.Grow(len(variable))
	b.WriteString(strings.ToLower(parts[0]))
	for _, part := range parts[1:] {
		b.WriteString(titleCaser.String(strings.ToLower(part)))
	}
	return b.String()
}

// DeconvertVariableName returns the SERPENT_STYLE form of a mixedCase
// variable name. Every upper-case rune is kept and preceded by an inserted
// underscore; everything else is upper-cased in place.
//
// This is an approximate inverse of ConvertVariableName: adjacent capitals
// ("microNG") come back split ("MICRO_N_G").
func DeconvertVariableName(variable string) string {
	var b strings.Builder
	b.Grow(len(variable) + 4)
	for _, r := range variable {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(r)
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
