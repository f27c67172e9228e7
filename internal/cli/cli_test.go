package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"prog", "-f", "terminal", "game.ch8"}

	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", opts.Input)
	assert.Equal(t, options.FrontendTerminal, opts.Frontend)
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Frontend: options.FrontendDesktop},
				Machine:    options.Machine{CyclesPerFrame: 10, Scale: 10},
			},
		},
		{
			name: "machine flags",
			args: []string{"prog", "-cpf", "20", "-scale", "4", "-seed", "7", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Frontend: options.FrontendDesktop},
				Machine:    options.Machine{CyclesPerFrame: 20, Scale: 4, Seed: 7},
			},
		},
		{
			name: "trace implies debug",
			args: []string{"prog", "-q", "-trace", "-f", "TUI", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Frontend: options.FrontendTerminal, Trace: true, Debug: true},
				Machine:    options.Machine{CyclesPerFrame: 10, Scale: 10},
			},
		},
		{
			name: "disasm and statsview",
			args: []string{"prog", "-disasm", "-statsview", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags:      options.Flags{Frontend: options.FrontendDesktop, Disasm: true, Statsview: true},
				Machine:    options.Machine{CyclesPerFrame: 10, Scale: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no ROM file", []string{"prog"}, true},
		{"unknown flag", []string{"prog", "-nope", "pong.ch8"}, true},
		{"flag after ROM file", []string{"prog", "pong.ch8", "-q"}, true},
		{"two ROM files", []string{"prog", "a.ch8", "b.ch8"}, false},
		{"unsupported frontend", []string{"prog", "-f", "sdl", "pong.ch8"}, false},
		{"cycles out of range", []string{"prog", "-cpf", "0", "pong.ch8"}, false},
		{"scale out of range", []string{"prog", "-scale", "41", "pong.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}
