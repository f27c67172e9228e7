package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected Instruction
	}{
		{"clear screen", 0x00E0, Instruction{Word: 0x00E0, Family: 0x0, X: 0x0, Y: 0xE, N: 0x0, NN: 0xE0, NNN: 0x0E0}},
		{"draw", 0xD125, Instruction{Word: 0xD125, Family: 0xD, X: 0x1, Y: 0x2, N: 0x5, NN: 0x25, NNN: 0x125}},
		{"all bits set", 0xFFFF, Instruction{Word: 0xFFFF, Family: 0xF, X: 0xF, Y: 0xF, N: 0xF, NN: 0xFF, NNN: 0xFFF}},
		{"zero", 0x0000, Instruction{}},
		{"load immediate", 0x6A3C, Instruction{Word: 0x6A3C, Family: 0x6, X: 0xA, Y: 0x3, N: 0xC, NN: 0x3C, NNN: 0xA3C}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.word))
		})
	}
}

func TestDecode_FieldsReassemble(t *testing.T) {
	for word := 0; word <= 0xFFFF; word += 0x0101 {
		ins := Decode(uint16(word))
		assert.Equal(t, uint16(word), uint16(ins.Family)<<12|ins.NNN)
		assert.Equal(t, ins.NN, ins.Y<<4|ins.N)
	}
}
