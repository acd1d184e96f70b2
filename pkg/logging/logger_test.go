package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	logger := New(&buf)

	logger.Info().Str("genus", "Geranium").Msg("checking")

	output := buf.String()
	assert.Contains(t, output, `"genus":"Geranium"`)
	assert.Contains(t, output, `"message":"checking"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestNewLoggerFromConfig(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("explicit level", func(t *testing.T) {
		logger := NewLoggerFromConfig(&Config{Level: "error", Format: "json", Output: "discard"})
		assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
	})
}

func TestContextLogger(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(context.Background(), tl.Logger)
	got := FromContext(ctx)
	require.NotNil(t, got)

	got.Info().Msg("from context")
	assert.True(t, tl.Contains("from context"))
}

func TestWithGenus(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithGenus(ctx, "Cymbidium")

	FromContext(ctx).Info().Msg("checking")
	assert.True(t, tl.Contains("Cymbidium"))
}

func TestFromContextFallsBack(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)
	//nolint:staticcheck // explicit nil-context behavior is part of the contract
	assert.NotNil(t, FromContext(nil))
}
