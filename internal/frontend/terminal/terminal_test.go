package terminal

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/assert"
)

func TestFrame(t *testing.T) {
	var fb vm.Framebuffer
	fb.Toggle(0, 0)
	fb.Toggle(0, 1)
	fb.Toggle(1, 0)
	fb.Toggle(2, 1)

	lines := strings.Split(Frame(&fb), "\r\n")
	assert.Len(t, lines, vm.DisplayHeight/2+1)

	first := []rune(lines[0])
	assert.Len(t, first, vm.DisplayWidth)
	assert.Equal(t, "█▀▄ ", string(first[:4]))
	assert.Equal(t, strings.Repeat(" ", vm.DisplayWidth), lines[1])
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	term := New(os.Stdin, &out)

	var fb vm.Framebuffer
	assert.NoError(t, term.Render(&fb))
	assert.True(t, strings.HasPrefix(out.String(), ansiHome))
}

func TestPollInput(t *testing.T) {
	term := New(os.Stdin, &bytes.Buffer{})
	keys := vm.NewKeypad()

	term.events <- 'w'
	term.events <- 'p' // unmapped
	assert.True(t, term.PollInput(keys))
	assert.True(t, keys.IsDown(0x5))

	for range holdFrames - 1 {
		assert.True(t, term.PollInput(keys))
		assert.True(t, keys.IsDown(0x5))
	}
	assert.True(t, term.PollInput(keys))
	assert.False(t, keys.IsDown(0x5))
}

func TestPollInput_RepeatExtendsHold(t *testing.T) {
	term := New(os.Stdin, &bytes.Buffer{})
	keys := vm.NewKeypad()

	term.events <- 'x'
	assert.True(t, term.PollInput(keys))
	for range holdFrames - 1 {
		term.events <- 'x'
		assert.True(t, term.PollInput(keys))
	}
	assert.True(t, keys.IsDown(0x0))
}

func TestPollInput_Quit(t *testing.T) {
	tests := []struct {
		name string
		key  byte
	}{
		{"ctrl+c", keyCtrlC},
		{"escape", keyEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := New(os.Stdin, &bytes.Buffer{})
			term.events <- tt.key
			assert.False(t, term.PollInput(vm.NewKeypad()))
		})
	}

	t.Run("closed input", func(t *testing.T) {
		term := New(os.Stdin, &bytes.Buffer{})
		close(term.events)
		assert.False(t, term.PollInput(vm.NewKeypad()))
	})
}

func TestStop_WithoutStart(t *testing.T) {
	var out bytes.Buffer
	term := New(os.Stdin, &out)
	assert.NoError(t, term.Stop())
	assert.True(t, strings.Contains(out.String(), ansiShowCursor))
}
