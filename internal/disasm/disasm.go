// Package disasm converts CHIP-8 instruction words into assembly mnemonics.
// It is used for execution tracing and for ROM listings.
package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Lookup returns the opcode definition that matches the instruction word.
func Lookup(word uint16) (chip8.Opcode, bool) {
	opcodes := chip8.Opcodes[int(word>>12)]
	for _, op := range opcodes {
		if op.Info.Mask&word == op.Info.Value {
			return op, op.Instruction != nil
		}
	}
	return chip8.Opcode{}, false
}

// Instruction returns the assembly text for the instruction word.
// Words that do not match any opcode are rendered as a data word.
func Instruction(word uint16) string {
	op, ok := Lookup(word)
	if !ok {
		return fmt.Sprintf(".word $%04X", word)
	}

	name := op.Instruction.Name
	if params := formatParams(name, vm.Decode(word)); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// Listing writes a disassembly of the program image, which is assumed to be
// loaded at vm.ProgramStart. Every line contains address, raw bytes and the
// instruction text.
func Listing(w io.Writer, program []byte) error {
	address := vm.ProgramStart
	for i := 0; i < len(program); i += vm.InstructionSize {
		if i+1 == len(program) {
			if _, err := fmt.Fprintf(w, "$%03X  %02X     .byte $%02X\n", address+i, program[i], program[i]); err != nil {
				return fmt.Errorf("writing listing line: %w", err)
			}
			break
		}

		word := uint16(program[i])<<8 | uint16(program[i+1])
		if _, err := fmt.Fprintf(w, "$%03X  %02X %02X  %s\n", address+i, program[i], program[i+1], Instruction(word)); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
	}
	return nil
}

// formatParams formats the parameters of an instruction.
func formatParams(name string, ins vm.Instruction) string {
	switch name {
	case chip8.Cls.Name, chip8.Ret.Name:
		return "" // No parameters
	case chip8.Jp.Name:
		return formatJump(ins)
	case chip8.Call.Name:
		return fmt.Sprintf("$%03X", ins.NNN)
	case chip8.Se.Name, chip8.Sne.Name:
		return formatCompare(ins)
	case chip8.Ld.Name:
		return formatLoad(ins)
	case chip8.Add.Name:
		return formatAdd(ins)
	case chip8.Or.Name, chip8.And.Name, chip8.Xor.Name, chip8.Sub.Name, chip8.Subn.Name:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case chip8.Shr.Name, chip8.Shl.Name, chip8.Skp.Name, chip8.Sknp.Name:
		return fmt.Sprintf("V%X", ins.X)
	case chip8.Rnd.Name:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case chip8.Drw.Name:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	}
	return ""
}

// formatJump formats jump instructions (JP addr, JP V0, addr).
func formatJump(ins vm.Instruction) string {
	if ins.Family == 0xB {
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	}
	return fmt.Sprintf("$%03X", ins.NNN)
}

// formatCompare formats comparison instructions (SE, SNE).
func formatCompare(ins vm.Instruction) string {
	switch ins.Family {
	case 0x3, 0x4:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	default:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	}
}

// formatLoad formats all load variants.
func formatLoad(ins vm.Instruction) string {
	switch ins.Family {
	case 0x6:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case 0x8:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case 0xA:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case 0xF:
		return formatLoadMisc(ins)
	}
	return ""
}

// formatLoadMisc formats the FXNN load variants.
func formatLoadMisc(ins vm.Instruction) string {
	switch ins.NN {
	case 0x07:
		return fmt.Sprintf("V%X, DT", ins.X)
	case 0x0A:
		return fmt.Sprintf("V%X, K", ins.X)
	case 0x15:
		return fmt.Sprintf("DT, V%X", ins.X)
	case 0x18:
		return fmt.Sprintf("ST, V%X", ins.X)
	case 0x29:
		return fmt.Sprintf("F, V%X", ins.X)
	case 0x33:
		return fmt.Sprintf("B, V%X", ins.X)
	case 0x55:
		return fmt.Sprintf("[I], V%X", ins.X)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", ins.X)
	}
	return ""
}

// formatAdd formats add instructions (ADD Vx, byte / ADD Vx, Vy / ADD I, Vx).
func formatAdd(ins vm.Instruction) string {
	switch ins.Family {
	case 0x7:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case 0x8:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case 0xF:
		return fmt.Sprintf("I, V%X", ins.X)
	}
	return ""
}
