package desktop

import "github.com/hajimehoshi/ebiten/v2"

type keyMapping struct {
	key    ebiten.Key
	symbol rune
}

// keyMap contains the keyboard keys that are forwarded to the keypad.
var keyMap = []keyMapping{
	{ebiten.Key1, '1'}, {ebiten.Key2, '2'}, {ebiten.Key3, '3'}, {ebiten.Key4, '4'},
	{ebiten.KeyQ, 'q'}, {ebiten.KeyW, 'w'}, {ebiten.KeyE, 'e'}, {ebiten.KeyR, 'r'},
	{ebiten.KeyA, 'a'}, {ebiten.KeyS, 's'}, {ebiten.KeyD, 'd'}, {ebiten.KeyF, 'f'},
	{ebiten.KeyZ, 'z'}, {ebiten.KeyX, 'x'}, {ebiten.KeyC, 'c'}, {ebiten.KeyV, 'v'},
}
