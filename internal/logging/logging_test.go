package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/openspace/internal/logging"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level string
		dev   bool
		want  zapcore.Level
	}{
		{"debug", true, zapcore.DebugLevel},
		{"info", false, zapcore.InfoLevel},
		{"WARN", false, zapcore.WarnLevel},
		{"error", true, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := logging.New(tt.level, tt.dev)
			require.NoError(t, err)
			require.True(t, log.Core().Enabled(tt.want))
			require.False(t, log.Core().Enabled(tt.want-1))
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := logging.New("loud", false)
	require.ErrorContains(t, err, "log level")
}
