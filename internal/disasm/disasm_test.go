package disasm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name        string
		word        uint16
		instruction *chip8.Instruction
	}{
		{"CLS", 0x00E0, chip8.Cls},
		{"RET", 0x00EE, chip8.Ret},
		{"JP", 0x1234, chip8.Jp},
		{"JP V0", 0xB234, chip8.Jp},
		{"CALL", 0x2345, chip8.Call},
		{"SE byte", 0x3112, chip8.Se},
		{"SNE byte", 0x4112, chip8.Sne},
		{"SE reg", 0x5120, chip8.Se},
		{"LD byte", 0x6A3C, chip8.Ld},
		{"ADD byte", 0x7A05, chip8.Add},
		{"OR", 0x8121, chip8.Or},
		{"AND", 0x8122, chip8.And},
		{"XOR", 0x8123, chip8.Xor},
		{"SUB", 0x8125, chip8.Sub},
		{"SHR", 0x8126, chip8.Shr},
		{"SUBN", 0x8127, chip8.Subn},
		{"SHL", 0x812E, chip8.Shl},
		{"SNE reg", 0x9120, chip8.Sne},
		{"LD I", 0xA123, chip8.Ld},
		{"RND", 0xC1FF, chip8.Rnd},
		{"DRW", 0xD125, chip8.Drw},
		{"SKP", 0xE19E, chip8.Skp},
		{"SKNP", 0xE1A1, chip8.Sknp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := Lookup(tt.word)
			assert.True(t, ok)
			assert.Equal(t, tt.instruction.Name, op.Instruction.Name)
		})
	}
}

func TestInstruction(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, chip8.Cls.Name},
		{0x00EE, chip8.Ret.Name},
		{0x1234, chip8.Jp.Name + " $234"},
		{0xB234, chip8.Jp.Name + " V0, $234"},
		{0x2345, chip8.Call.Name + " $345"},
		{0x3A12, chip8.Se.Name + " VA, $12"},
		{0x9AB0, chip8.Sne.Name + " VA, VB"},
		{0x6A3C, chip8.Ld.Name + " VA, $3C"},
		{0xA123, chip8.Ld.Name + " I, $123"},
		{0xF329, chip8.Ld.Name + " F, V3"},
		{0xF30A, chip8.Ld.Name + " V3, K"},
		{0xF355, chip8.Ld.Name + " [I], V3"},
		{0x7A05, chip8.Add.Name + " VA, $05"},
		{0x8124, chip8.Add.Name + " V1, V2"},
		{0xF11E, chip8.Add.Name + " I, V1"},
		{0x8123, chip8.Xor.Name + " V1, V2"},
		{0x812E, chip8.Shl.Name + " V1"},
		{0xC1FF, chip8.Rnd.Name + " V1, $FF"},
		{0xD125, chip8.Drw.Name + " V1, V2, $5"},
		{0xE19E, chip8.Skp.Name + " V1"},
		{0xFFFF, ".word $FFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Instruction(tt.word))
		})
	}
}

func TestListing(t *testing.T) {
	var buf bytes.Buffer
	err := Listing(&buf, []byte{0x00, 0xE0, 0x12, 0x00, 0xAB})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "$200  00 E0  "+chip8.Cls.Name, lines[0])
	assert.Equal(t, "$202  12 00  "+chip8.Jp.Name+" $200", lines[1])
	assert.Equal(t, "$204  AB     .byte $AB", lines[2])
}
