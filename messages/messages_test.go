package messages

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serptools/serptools/sterrors"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelCritical, "critical"},
		{Level(42), "level(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Run("canonical names", func(t *testing.T) {
		for _, name := range []string{"debug", "info", "warn", "error", "critical"} {
			level, err := ParseLevel(name)
			require.NoError(t, err)
			assert.Equal(t, name, level.String())
		}
	})

	t.Run("case and whitespace tolerant", func(t *testing.T) {
		level, err := ParseLevel("  WARNING ")
		require.NoError(t, err)
		assert.Equal(t, LevelWarn, level)
	})

	t.Run("unknown name lists valid levels", func(t *testing.T) {
		_, err := ParseLevel("loud")
		require.Error(t, err)
		assert.ErrorIs(t, err, sterrors.ErrLookup)
		assert.Contains(t, err.Error(), "debug")
		assert.Contains(t, err.Error(), "critical")
	})
}

func TestLevelOrdering(t *testing.T) {
	assert.True(t, LevelDebug < LevelInfo)
	assert.True(t, LevelInfo < LevelWarn)
	assert.True(t, LevelWarn < LevelError)
	assert.True(t, LevelError < LevelCritical)
}

func TestHandlerRegistry(t *testing.T) {
	h := NewCaptureHandler(LevelDebug)

	before := len(Handlers())
	AddHandler(h)
	assert.Len(t, Handlers(), before+1)

	RemoveHandler(h)
	assert.Len(t, Handlers(), before)

	t.Run("removing an unregistered handler is a no-op", func(t *testing.T) {
		RemoveHandler(NewCaptureHandler(LevelDebug))
		assert.Len(t, Handlers(), before)
	})

	t.Run("snapshot does not expose internal slice", func(t *testing.T) {
		snap := Handlers()
		snap[0] = nil
		assert.NotNil(t, Handlers()[0])
	})
}

func TestEmitRouting(t *testing.T) {
	h := NewCaptureHandler(LevelWarn)
	AddHandler(h)
	defer RemoveHandler(h)

	Debug("too quiet")
	Info("still too quiet")
	Warn("loud enough")
	Error("definitely")
	Critical("very much so")

	_, ok := h.Messages(LevelDebug)
	assert.False(t, ok, "handler below min should not capture")
	_, ok = h.Messages(LevelInfo)
	assert.False(t, ok)

	warns, ok := h.Messages(LevelWarn)
	require.True(t, ok)
	assert.Equal(t, []string{"loud enough"}, warns)

	assert.Equal(t, []Level{LevelWarn, LevelError, LevelCritical}, h.Levels())
}

func TestEmitAttrFormatting(t *testing.T) {
	h := NewCaptureHandler(LevelDebug)
	AddHandler(h)
	defer RemoveHandler(h)

	Info("read record", "name", "INF_KINF", "tokens", 2)
	Info("dangling", "key")

	msgs, ok := h.Messages(LevelInfo)
	require.True(t, ok)
	assert.Equal(t, "read record name=INF_KINF tokens=2", msgs[0])
	assert.Equal(t, "dangling !BADKEY=key", msgs[1])
}

func TestCaptureHandlerOrdering(t *testing.T) {
	h := NewCaptureHandler(LevelDebug)
	h.Handle(LevelInfo, "first")
	h.Handle(LevelInfo, "second")
	h.Handle(LevelInfo, "third")

	msgs, ok := h.Messages(LevelInfo)
	require.True(t, ok)
	assert.Equal(t, []string{"first", "second", "third"}, msgs)
}

func TestSlogHandler(t *testing.T) {
	t.Run("writes through the slog backend", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		h := NewSlogHandler(logger, LevelDebug)

		h.Handle(LevelWarn, "something odd")
		assert.Contains(t, buf.String(), "WARN")
		assert.Contains(t, buf.String(), "something odd")
	})

	t.Run("critical maps above error", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		h := NewSlogHandler(logger, LevelDebug)

		h.Handle(LevelCritical, "boom")
		assert.Contains(t, buf.String(), "ERROR+4")
	})

	t.Run("respects minimum level", func(t *testing.T) {
		h := NewSlogHandler(nil, LevelError)
		assert.False(t, h.Enabled(LevelWarn))
		assert.True(t, h.Enabled(LevelError))
		assert.True(t, h.Enabled(LevelCritical))
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		h := NewSlogHandler(nil, LevelInfo)
		assert.NotNil(t, h.logger)
	})
}
