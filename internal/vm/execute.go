package vm

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// execute runs a decoded instruction. PC already points to the next instruction.
func (m *Machine) execute(ins Instruction) (Status, error) {
	switch ins.Family {
	case familySystem:
		return Advanced, m.executeSystem(ins)

	case familyJump:
		m.pc = ins.NNN

	case familyCall:
		if err := m.push(m.pc); err != nil {
			return Advanced, err
		}
		m.pc = ins.NNN

	case familySkipEqualNN:
		m.skipIf(m.v[ins.X] == ins.NN)

	case familySkipNotNN:
		m.skipIf(m.v[ins.X] != ins.NN)

	case familySkipEqualY:
		if ins.N == 0 {
			m.skipIf(m.v[ins.X] == m.v[ins.Y])
		} else {
			m.unknown(ins)
		}

	case familyLoadNN:
		m.v[ins.X] = ins.NN

	case familyAddNN:
		// no carry, VF keeps its value
		m.v[ins.X] += ins.NN

	case familyALU:
		m.executeALU(ins)

	case familySkipNotY:
		if ins.N == 0 {
			m.skipIf(m.v[ins.X] != m.v[ins.Y])
		} else {
			m.unknown(ins)
		}

	case familySetIndex:
		m.i = ins.NNN

	case familyJumpOffset:
		m.pc = ins.NNN + uint16(m.v[0])

	case familyRandom:
		m.v[ins.X] = m.random() & ins.NN

	case familyDraw:
		return Advanced, m.draw(ins)

	case familyKey:
		m.executeKey(ins)

	case familyMisc:
		return m.executeMisc(ins)
	}
	return Advanced, nil
}

func (m *Machine) executeSystem(ins Instruction) error {
	switch ins.NNN {
	case uint16(sysClear):
		m.display.Clear()
		m.displayChange = true

	case uint16(sysReturn):
		address, err := m.pop()
		if err != nil {
			return err
		}
		m.pc = address

	default:
		// 0NNN machine code routines are not supported
		m.unknown(ins)
	}
	return nil
}

func (m *Machine) executeALU(ins Instruction) {
	x, y := m.v[ins.X], m.v[ins.Y]

	switch ins.N {
	case aluAssign:
		m.v[ins.X] = y
	case aluOr:
		m.v[ins.X] = x | y
	case aluAnd:
		m.v[ins.X] = x & y
	case aluXor:
		m.v[ins.X] = x ^ y

	case aluAdd:
		sum := uint16(x) + uint16(y)
		m.v[ins.X] = uint8(sum)
		// VF as carry flag, written last so it wins over VF as destination
		m.v[FlagRegister] = boolToFlag(sum > 0xFF)

	case aluSub:
		m.v[ins.X] = x - y
		// VF as not-borrow flag
		m.v[FlagRegister] = boolToFlag(x >= y)

	case aluSubReverse:
		m.v[ins.X] = y - x
		// VF as not-borrow flag
		m.v[FlagRegister] = boolToFlag(y >= x)

	case aluShiftRight:
		// VF receives the shifted out bit before Vx receives the result
		m.v[FlagRegister] = x & 0x01
		m.v[ins.X] = x >> 1

	case aluShiftLeft:
		// VF receives the shifted out bit before Vx receives the result
		m.v[FlagRegister] = x >> 7
		m.v[ins.X] = x << 1

	default:
		m.unknown(ins)
	}
}

func (m *Machine) executeKey(ins Instruction) {
	switch ins.NN {
	case keySkipDown:
		m.skipIf(m.keys.IsDown(m.v[ins.X]))
	case keySkipUp:
		m.skipIf(!m.keys.IsDown(m.v[ins.X]))
	default:
		m.unknown(ins)
	}
}

func (m *Machine) executeMisc(ins Instruction) (Status, error) {
	switch ins.NN {
	case miscGetDelay:
		m.v[ins.X] = m.delayTimer

	case miscWaitKey:
		return m.waitKey(ins), nil

	case miscSetDelay:
		m.delayTimer = m.v[ins.X]

	case miscSetSound:
		m.soundTimer = m.v[ins.X]

	case miscAddIndex:
		m.i = (m.i + uint16(m.v[ins.X])) & MaxAddress

	case miscFontCharacter:
		m.i = GlyphAddress(m.v[ins.X])

	case miscStoreBCD:
		if err := checkRange(m.i, 3); err != nil {
			return Advanced, fmt.Errorf("storing BCD: %w", err)
		}
		value := m.v[ins.X]
		m.memory.data[m.i] = value / 100
		m.memory.data[m.i+1] = value / 10 % 10
		m.memory.data[m.i+2] = value % 10

	case miscRegisterDump:
		count := int(ins.X) + 1
		if err := checkRange(m.i, count); err != nil {
			return Advanced, fmt.Errorf("storing registers: %w", err)
		}
		copy(m.memory.data[m.i:], m.v[:count])

	case miscRegisterLoad:
		count := int(ins.X) + 1
		data, err := m.memory.Slice(m.i, count)
		if err != nil {
			return Advanced, fmt.Errorf("loading registers: %w", err)
		}
		copy(m.v[:count], data)

	default:
		m.unknown(ins)
	}
	return Advanced, nil
}

// waitKey stores the next key press in Vx. Without a key press PC is moved
// back onto the instruction so that the next step executes it again.
func (m *Machine) waitKey(ins Instruction) Status {
	if !m.waiting {
		m.waiting = true
		m.keys.clearPressed()
	}

	key, ok := m.keys.takePressed()
	if !ok {
		m.pc -= InstructionSize
		return Waiting
	}

	m.waiting = false
	m.v[ins.X] = key
	return Advanced
}

// draw XORs an N rows high sprite read from memory at I onto the display at (Vx, Vy).
func (m *Machine) draw(ins Instruction) error {
	rows, err := m.memory.Slice(m.i, int(ins.N))
	if err != nil {
		return fmt.Errorf("reading sprite: %w", err)
	}

	x, y := int(m.v[ins.X]), int(m.v[ins.Y])
	// VF as collision flag
	m.v[FlagRegister] = 0
	if m.display.DrawSprite(x, y, rows) {
		m.v[FlagRegister] = 1
	}
	m.displayChange = true
	return nil
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += InstructionSize
	}
}

func (m *Machine) unknown(ins Instruction) {
	m.logger.Debug("Ignoring unknown opcode",
		log.Hex("opcode", ins.Word),
		log.Hex("address", m.pc-InstructionSize))
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
