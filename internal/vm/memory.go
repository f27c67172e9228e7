package vm

import "fmt"

// Memory layout constants.
//
//	0x000-0x1FF: Interpreter area, font glyphs are stored at FontAddress
//	0x200-0xFFF: Program and working data
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000
	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1
	// ProgramStart is the address programs are loaded at and where execution starts.
	ProgramStart = 0x200
	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart
	// FontAddress is the address of the first font glyph.
	FontAddress = 0x050
	// FontGlyphSize is the size in bytes of a single font glyph.
	FontGlyphSize = 5
)

// font contains the glyphs for the hexadecimal digits 0-F, each 4 pixels wide and 5 rows high.
var font = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// GlyphAddress returns the memory address of the font glyph for the given hex digit.
// Only the low nibble of digit is used.
func GlyphAddress(digit uint8) uint16 {
	return FontAddress + uint16(digit&0x0F)*FontGlyphSize
}

// Memory is the flat byte addressable memory of the machine.
// All accesses are bounds checked.
type Memory struct {
	data [MemorySize]byte
}

// reset zeroes the memory and loads the font glyphs.
func (m *Memory) reset() {
	m.data = [MemorySize]byte{}
	copy(m.data[FontAddress:], font[:])
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if address > MaxAddress {
		return 0, fmt.Errorf("reading address $%04X: %w", address, ErrAddressOutOfRange)
	}
	return m.data[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if address > MaxAddress {
		return fmt.Errorf("writing address $%04X: %w", address, ErrAddressOutOfRange)
	}
	m.data[address] = value
	return nil
}

// ReadWord returns the big-endian 16-bit word starting at the given address.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	if err := checkRange(address, 2); err != nil {
		return 0, fmt.Errorf("reading word: %w", err)
	}
	return uint16(m.data[address])<<8 | uint16(m.data[address+1]), nil
}

// Slice returns a read-only view of length bytes starting at address.
// The returned slice must not be modified.
func (m *Memory) Slice(address uint16, length int) ([]byte, error) {
	if err := checkRange(address, length); err != nil {
		return nil, err
	}
	return m.data[address : int(address)+length], nil
}

// load copies data into memory starting at address.
func (m *Memory) load(address uint16, data []byte) error {
	if err := checkRange(address, len(data)); err != nil {
		return err
	}
	copy(m.data[address:], data)
	return nil
}

// checkRange verifies that length bytes starting at address are all addressable.
func checkRange(address uint16, length int) error {
	if length < 0 || int(address)+length > MemorySize {
		return fmt.Errorf("range $%04X+%d: %w", address, length, ErrAddressOutOfRange)
	}
	return nil
}
