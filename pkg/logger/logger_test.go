package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"nonsense", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithFieldsReturnsNewLogger(t *testing.T) {
	base := Nop()
	derived := base.WithFields(map[string]interface{}{
		"ticker": "AAPL",
		"score":  71.5,
	})

	if derived == base {
		t.Error("WithFields should return a new Logger, not mutate the receiver")
	}

	// Must not panic on any level
	derived.Debug("debug")
	derived.Info("info")
	derived.Warn("warn")
	derived.WithError(nil).Error("error")
}
