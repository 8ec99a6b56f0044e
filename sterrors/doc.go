// Package sterrors provides structured error types for the serptools library.
//
// Import path: github.com/serptools/serptools/sterrors
//
// This package enables programmatic error handling via [errors.Is] and
// [errors.As], allowing callers to distinguish between different categories of
// errors and implement appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [ConversionError]: a record token that could not be coerced to the
//     requested numeric type
//   - [StateError]: an operation invoked outside its valid lifecycle state,
//     such as detaching a log capture that was never attached
//   - [LookupError]: a key with no entries, reported together with the keys
//     that do have entries
//   - [SettingsError]: an invalid or unsupported settings value
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrConversion]: matches any [ConversionError]
//   - [ErrState]: matches any [StateError]
//   - [ErrLookup]: matches any [LookupError]
//   - [ErrSettings]: matches any [SettingsError]
//
// # Usage Examples
//
// Check the error category with errors.Is():
//
//	vec, err := records.Str2Vec(body)
//	if errors.Is(err, sterrors.ErrConversion) {
//	    // Handle the malformed record
//	}
//
// Extract details with errors.As():
//
//	var convErr *sterrors.ConversionError
//	if errors.As(err, &convErr) {
//	    fmt.Printf("bad token %q at position %d\n", convErr.Token, convErr.Position)
//	}
package sterrors
