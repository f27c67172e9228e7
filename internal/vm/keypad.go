package vm

// KeyCount is the number of keys of the hex keypad.
const KeyCount = 16

// noKey marks that no key press is pending.
const noKey = -1

// keySymbols maps keyboard symbols to the hex keypad layout:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  <-  q w e r
//	7 8 9 E      a s d f
//	A 0 B F      z x c v
var keySymbols = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// KeyForSymbol returns the hex key that the keyboard symbol is mapped to.
// Upper case letters map like their lower case variants.
func KeyForSymbol(symbol rune) (uint8, bool) {
	if symbol >= 'A' && symbol <= 'Z' {
		symbol += 'a' - 'A'
	}
	key, ok := keySymbols[symbol]
	return key, ok
}

// Symbols returns the keyboard symbol for every hex key, indexed by key.
func Symbols() [KeyCount]rune {
	var symbols [KeyCount]rune
	for symbol, key := range keySymbols {
		symbols[key] = symbol
	}
	return symbols
}

// Keypad latches the state of the 16 hex keys. It is written by the input
// frontend and read by the machine.
type Keypad struct {
	down    [KeyCount]bool
	pressed int // last key that transitioned to down, or noKey
}

// NewKeypad returns a keypad with all keys released.
func NewKeypad() *Keypad {
	return &Keypad{pressed: noKey}
}

// Press marks the key as held down. Keys outside 0x0-0xF are ignored.
func (k *Keypad) Press(key uint8) {
	if key >= KeyCount {
		return
	}
	if !k.down[key] {
		k.pressed = int(key)
	}
	k.down[key] = true
}

// Release marks the key as released. Keys outside 0x0-0xF are ignored.
func (k *Keypad) Release(key uint8) {
	if key >= KeyCount {
		return
	}
	k.down[key] = false
}

// KeyDown presses the key mapped to the keyboard symbol.
// It returns false if the symbol is not mapped.
func (k *Keypad) KeyDown(symbol rune) bool {
	key, ok := KeyForSymbol(symbol)
	if ok {
		k.Press(key)
	}
	return ok
}

// KeyUp releases the key mapped to the keyboard symbol.
// It returns false if the symbol is not mapped.
func (k *Keypad) KeyUp(symbol rune) bool {
	key, ok := KeyForSymbol(symbol)
	if ok {
		k.Release(key)
	}
	return ok
}

// IsDown returns whether the key is held down. Only the low nibble of key is used.
func (k *Keypad) IsDown(key uint8) bool {
	return k.down[key&0x0F]
}

// ReleaseAll releases all keys and drops a pending key press.
func (k *Keypad) ReleaseAll() {
	k.down = [KeyCount]bool{}
	k.pressed = noKey
}

// takePressed returns and clears the pending key press.
func (k *Keypad) takePressed() (uint8, bool) {
	if k.pressed == noKey {
		return 0, false
	}
	key := uint8(k.pressed)
	k.pressed = noKey
	return key, true
}

// clearPressed drops a pending key press.
func (k *Keypad) clearPressed() {
	k.pressed = noKey
}
