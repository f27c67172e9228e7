package vm

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	var mem Memory

	assert.NoError(t, mem.Write(MaxAddress, 0x42))
	b, err := mem.Read(MaxAddress)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x42), b)

	err = mem.Write(MemorySize, 0x01)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	_, err = mem.Read(0xFFFF)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

func TestMemory_ReadWord(t *testing.T) {
	var mem Memory
	assert.NoError(t, mem.load(0x300, []byte{0x12, 0x34}))

	w, err := mem.ReadWord(0x300)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)

	_, err = mem.ReadWord(MaxAddress)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

func TestMemory_Slice(t *testing.T) {
	var mem Memory

	data, err := mem.Slice(MaxAddress-1, 2)
	assert.NoError(t, err)
	assert.Len(t, data, 2)

	_, err = mem.Slice(MaxAddress-1, 3)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

func TestMemory_Font(t *testing.T) {
	var mem Memory
	mem.reset()

	glyph, err := mem.Slice(GlyphAddress(0xF), FontGlyphSize)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xF0, 0x80, 0xF0, 0x80, 0x80}, glyph)

	// only the low nibble selects the glyph
	assert.Equal(t, GlyphAddress(0x3), GlyphAddress(0x13))
	assert.Equal(t, uint16(FontAddress+10*FontGlyphSize), GlyphAddress(0xA))
}
