package config

import (
	"testing"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name         string
		debug, quiet bool
	}{
		{"default", false, false},
		{"debug", true, false},
		{"quiet", false, true},
		{"debug wins over quiet", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, CreateLogger(tt.debug, tt.quiet))
		})
	}
}

func TestLoggerFor(t *testing.T) {
	opts := options.New()
	opts.Quiet = true
	assert.NotNil(t, LoggerFor(opts))
}
