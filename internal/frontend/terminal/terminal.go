// Package terminal implements a text frontend that renders the display with
// block characters and reads keys from a raw mode terminal.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/chip8vm/internal/vm"
	"golang.org/x/term"
)

const (
	// holdFrames is the number of frames a key stays pressed after its last
	// key stroke, terminals do not report key releases.
	holdFrames = 8

	keyCtrlC  = 0x03
	keyEscape = 0x1B

	ansiClear      = "\x1b[2J"
	ansiHome       = "\x1b[H"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
	ansiReset      = "\x1b[0m"
)

var errNotTerminal = errors.New("input is not a terminal")

// Terminal implements runner.Frontend on a terminal.
type Terminal struct {
	in  *os.File
	out io.Writer

	events   chan byte
	held     [vm.KeyCount]int // remaining frames per held key
	oldState *term.State
}

// New returns a terminal frontend reading from in and writing to out.
func New(in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		events: make(chan byte, 64),
	}
}

// Start switches the terminal into raw mode and starts reading key strokes.
// Stop must be called to restore the terminal.
func (t *Terminal) Start() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	t.oldState = oldState

	if _, err := io.WriteString(t.out, ansiClear+ansiHideCursor); err != nil {
		_ = t.Stop()
		return fmt.Errorf("initializing screen: %w", err)
	}

	go t.readKeys()
	return nil
}

// Stop restores the terminal state.
func (t *Terminal) Stop() error {
	_, _ = io.WriteString(t.out, ansiReset+ansiShowCursor+"\r\n")
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.oldState)
	t.oldState = nil
	if err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// readKeys forwards key strokes until the input is closed.
// The goroutine ends with the process if the input stays open.
func (t *Terminal) readKeys() {
	buf := make([]byte, 16)
	for {
		n, err := t.in.Read(buf)
		for _, b := range buf[:n] {
			t.events <- b
		}
		if err != nil {
			close(t.events)
			return
		}
	}
}

// PollInput releases keys whose hold period expired and presses the keys of
// all pending key strokes. It returns false on Ctrl+C, Escape or closed input.
func (t *Terminal) PollInput(keys *vm.Keypad) bool {
	for key := range t.held {
		if t.held[key] == 0 {
			continue
		}
		t.held[key]--
		if t.held[key] == 0 {
			keys.Release(uint8(key))
		}
	}

	for {
		select {
		case b, ok := <-t.events:
			if !ok || !t.handleKey(keys, b) {
				return false
			}
		default:
			return true
		}
	}
}

// handleKey processes a single key stroke, it returns false for quit keys.
func (t *Terminal) handleKey(keys *vm.Keypad, b byte) bool {
	if b == keyCtrlC || b == keyEscape {
		return false
	}
	key, ok := vm.KeyForSymbol(rune(b))
	if !ok {
		return true
	}
	keys.Press(key)
	t.held[key] = holdFrames
	return true
}

// Render draws the framebuffer at the top left of the terminal.
func (t *Terminal) Render(fb *vm.Framebuffer) error {
	if _, err := io.WriteString(t.out, ansiHome+Frame(fb)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Frame returns the framebuffer as text, every character covers two pixel rows.
func Frame(fb *vm.Framebuffer) string {
	var sb strings.Builder
	sb.Grow((vm.DisplayWidth*3 + 2) * vm.DisplayHeight / 2)

	for y := 0; y < vm.DisplayHeight; y += 2 {
		for x := range vm.DisplayWidth {
			top, bottom := fb.Pixel(x, y), fb.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
