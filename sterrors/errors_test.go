package sterrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionError(t *testing.T) {
	cause := errors.New("invalid syntax")
	err := &ConversionError{Token: "1.2x", Position: 3, Cause: cause}

	t.Run("message includes token and position", func(t *testing.T) {
		assert.Contains(t, err.Error(), `"1.2x"`)
		assert.Contains(t, err.Error(), "token 3")
		assert.Contains(t, err.Error(), "invalid syntax")
	})

	t.Run("matches sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrConversion)
		assert.NotErrorIs(t, err, ErrState)
	})

	t.Run("unwraps to cause", func(t *testing.T) {
		assert.ErrorIs(t, err, cause)
	})

	t.Run("extractable with errors.As through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("reading line 12: %w", err)
		var convErr *ConversionError
		assert.ErrorAs(t, wrapped, &convErr)
		assert.Equal(t, "1.2x", convErr.Token)
	})
}

func TestStateError(t *testing.T) {
	err := &StateError{Op: "logtest: detach", Missing: "Attach"}

	assert.ErrorIs(t, err, ErrState)
	assert.Contains(t, err.Error(), "logtest: detach")
	assert.Contains(t, err.Error(), "must call Attach first")

	t.Run("bare error still readable", func(t *testing.T) {
		bare := &StateError{}
		assert.Equal(t, "invalid state", bare.Error())
	})
}

func TestLookupError(t *testing.T) {
	err := &LookupError{Key: "error", Available: []string{"info", "warn"}}

	assert.ErrorIs(t, err, ErrLookup)
	assert.Contains(t, err.Error(), `"error"`)
	assert.Contains(t, err.Error(), "info, warn")

	t.Run("no available keys", func(t *testing.T) {
		empty := &LookupError{Key: "debug"}
		assert.NotContains(t, empty.Error(), "existing")
	})
}

func TestSettingsError(t *testing.T) {
	cause := errors.New("unknown level")
	err := &SettingsError{Name: "verbosity", Value: "loud", Message: "see messages.ParseLevel", Cause: cause}

	assert.ErrorIs(t, err, ErrSettings)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "verbosity=loud")
	assert.Contains(t, err.Error(), "see messages.ParseLevel")
}
