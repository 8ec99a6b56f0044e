package records

import (
	"strconv"
	"strings"

	"github.com/serptools/serptools/sterrors"
)

// Value enumerates the numeric types a record token may be converted to.
type Value interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// ParseVec splits s on whitespace and converts every token to T.
//
// The token count determines the length of the result; there is no padding
// and no validation beyond the numeric conversion itself. A blank string
// yields an empty slice. The first token that cannot be converted aborts the
// parse with a *sterrors.ConversionError naming the token and its position.
//
// Integer targets go through float64 parsing, so "1e3" converts to 1000 but
// fractional tokens are truncated.
func ParseVec[T Value](s string) ([]T, error) {
	fields := strings.Fields(s)
	out := make([]T, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &sterrors.ConversionError{Token: tok, Position: i, Cause: err}
		}
		out[i] = T(v)
	}
	return out, nil
}

// Str2Vec converts a whitespace-delimited record body to a float64 vector.
//
// This is the common case for SERPENT vector bodies such as
// "1.29362E+00 0.00087".
func Str2Vec(s string) ([]float64, error) {
	return ParseVec[float64](s)
}
