package vm

// Instruction is a decoded instruction word split into its addressing fields.
type Instruction struct {
	Word   uint16 // raw instruction word
	Family uint8  // opcode family, bits 12-15
	X      uint8  // register index, bits 8-11
	Y      uint8  // register index, bits 4-7
	N      uint8  // 4-bit immediate, bits 0-3
	NN     uint8  // 8-bit immediate, bits 0-7
	NNN    uint16 // 12-bit address, bits 0-11
}

// Decode splits an instruction word into its addressing fields.
// Every word decodes, validity is decided at execution.
func Decode(word uint16) Instruction {
	return Instruction{
		Word:   word,
		Family: uint8(word >> 12),
		X:      uint8(word>>8) & 0x0F,
		Y:      uint8(word>>4) & 0x0F,
		N:      uint8(word) & 0x0F,
		NN:     uint8(word),
		NNN:    word & 0x0FFF,
	}
}

// Opcode families, the top nibble of an instruction word.
const (
	familySystem      uint8 = 0x0 // 00E0 CLS, 00EE RET
	familyJump        uint8 = 0x1 // 1NNN
	familyCall        uint8 = 0x2 // 2NNN
	familySkipEqualNN uint8 = 0x3 // 3XNN
	familySkipNotNN   uint8 = 0x4 // 4XNN
	familySkipEqualY  uint8 = 0x5 // 5XY0
	familyLoadNN      uint8 = 0x6 // 6XNN
	familyAddNN       uint8 = 0x7 // 7XNN
	familyALU         uint8 = 0x8 // 8XYN
	familySkipNotY    uint8 = 0x9 // 9XY0
	familySetIndex    uint8 = 0xA // ANNN
	familyJumpOffset  uint8 = 0xB // BNNN
	familyRandom      uint8 = 0xC // CXNN
	familyDraw        uint8 = 0xD // DXYN
	familyKey         uint8 = 0xE // EX9E, EXA1
	familyMisc        uint8 = 0xF // FXNN
)

// Sub-opcodes of the ALU family, selected by N.
const (
	aluAssign     uint8 = 0x0
	aluOr         uint8 = 0x1
	aluAnd        uint8 = 0x2
	aluXor        uint8 = 0x3
	aluAdd        uint8 = 0x4
	aluSub        uint8 = 0x5
	aluShiftRight uint8 = 0x6
	aluSubReverse uint8 = 0x7
	aluShiftLeft  uint8 = 0xE
)

// Sub-opcodes of the system, key and misc families, selected by NN.
const (
	sysClear          uint8 = 0xE0
	sysReturn         uint8 = 0xEE
	keySkipDown       uint8 = 0x9E
	keySkipUp         uint8 = 0xA1
	miscGetDelay      uint8 = 0x07
	miscWaitKey       uint8 = 0x0A
	miscSetDelay      uint8 = 0x15
	miscSetSound      uint8 = 0x18
	miscAddIndex      uint8 = 0x1E
	miscFontCharacter uint8 = 0x29
	miscStoreBCD      uint8 = 0x33
	miscRegisterDump  uint8 = 0x55
	miscRegisterLoad  uint8 = 0x65
)
