package sterrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConversion indicates a numeric token conversion failure.
	ErrConversion = errors.New("conversion error")

	// ErrState indicates an operation was invoked outside its valid state.
	ErrState = errors.New("state error")

	// ErrLookup indicates a key with no entries.
	ErrLookup = errors.New("lookup error")

	// ErrSettings indicates an invalid settings value.
	ErrSettings = errors.New("settings error")
)

// ConversionError represents a failure to coerce a record token to the
// requested numeric type.
type ConversionError struct {
	// Token is the offending whitespace-delimited token
	Token string
	// Position is the zero-based token index within the record
	Position int
	// Cause is the underlying strconv error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("conversion error at token %d: %q", e.Position, e.Token)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// StateError represents an operation invoked outside its valid lifecycle
// state. It names the setup step that has not happened so callers can fix
// their usage order.
type StateError struct {
	// Op is the operation that failed
	Op string
	// Missing is the setup step that must run first
	Missing string
}

// Error returns a human-readable error message.
func (e *StateError) Error() string {
	msg := "invalid state"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Missing != "" {
		msg += ": must call " + e.Missing + " first"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *StateError) Is(target error) bool {
	return target == ErrState
}

// LookupError represents a query for a key that has no entries. Available
// carries the keys that do have entries to aid debugging.
type LookupError struct {
	// Key is the key that was queried
	Key string
	// Available lists the keys that do have entries
	Available []string
}

// Error returns a human-readable error message.
func (e *LookupError) Error() string {
	msg := fmt.Sprintf("no entries for %q", e.Key)
	if len(e.Available) > 0 {
		msg += "; existing: " + strings.Join(e.Available, ", ")
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}

// SettingsError represents an invalid or unsupported settings value.
type SettingsError struct {
	// Name is the dotted settings key
	Name string
	// Value is the rejected value
	Value any
	// Message provides additional context, such as the accepted values
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SettingsError) Error() string {
	msg := fmt.Sprintf("invalid setting %s=%v", e.Name, e.Value)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SettingsError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SettingsError) Is(target error) bool {
	return target == ErrSettings
}
