package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			require.Equal(t, tt.want, Init(tt.level, &buf))
			require.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}

	t.Run("filtering below the level", func(t *testing.T) {
		var buf bytes.Buffer
		Init("warn", &buf)

		log.Info().Msg("hidden")
		require.Empty(t, buf.String())

		log.Warn().Str("opponent", "Hal").Msg("shown")
		require.Contains(t, buf.String(), "shown")
		require.Contains(t, buf.String(), "Hal")
	})
}
