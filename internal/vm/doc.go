// Package vm implements the CHIP-8 virtual machine core.
//
// # Machine State
//
// The machine owns all of its state and mutates it in place:
//   - 4KB memory (0x000-0xFFF), font glyphs at FontAddress, programs at ProgramStart
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as the flag register
//   - the 12-bit index register I and the program counter PC
//   - a 16-entry call stack of return addresses
//   - the delay and sound timers
//   - a 64x32 monochrome Framebuffer and a 16-key Keypad
//
// # Execution
//
// Step fetches the big-endian instruction word at PC, advances PC by 2 and
// dispatches on the decoded opcode fields. Unknown opcodes are executed as
// no-ops. Call stack overflow/underflow and memory accesses outside the
// address space are returned as errors and leave the machine in the state
// before the faulting access.
//
// The wait-for-key instruction never blocks. Step reports Waiting and keeps
// PC on the instruction until a key is pressed, the caller keeps calling Step
// from its frame loop.
//
// # Usage Example
//
//	m := vm.New(vm.WithLogger(logger))
//	if err := m.LoadProgram(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	for {
//		if _, err := m.Step(); err != nil {
//			return err
//		}
//	}
package vm
