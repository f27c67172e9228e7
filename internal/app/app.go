// Package app provides the main application helpers for the emulator.
package app

import (
	"strings"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// keypadLayout is the order of the hex keys on the original keypad.
var keypadLayout = [4][4]uint8{
	{0x1, 0x2, 0x3, 0xC},
	{0x4, 0x5, 0x6, 0xD},
	{0x7, 0x8, 0x9, 0xE},
	{0xA, 0x0, 0xB, 0xF},
}

// PrintInfo prints the information about the input file and the run settings.
func PrintInfo(logger *log.Logger, opts options.Program, program []byte) {
	if opts.Quiet {
		return
	}

	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String("frontend", opts.Frontend),
		log.Int("cycles_per_frame", opts.CyclesPerFrame),
	)
	logger.Info("Keyboard layout", log.String("keys", KeyboardLayout()))
}

// KeyboardLayout returns the keyboard keys in keypad order, one keypad row
// per group, for example "1234 qwer asdf zxcv".
func KeyboardLayout() string {
	symbols := vm.Symbols()
	rows := make([]string, 0, len(keypadLayout))
	for _, row := range keypadLayout {
		var sb strings.Builder
		for _, key := range row {
			sb.WriteRune(symbols[key])
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, " ")
}
