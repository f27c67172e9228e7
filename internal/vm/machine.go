package vm

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/retroenv/retrogolib/log"
)

const (
	// RegisterCount is the number of general-purpose registers.
	RegisterCount = 16
	// StackSize is the maximum number of nested calls.
	StackSize = 16
	// FlagRegister is the index of VF, the carry/borrow/collision flag.
	FlagRegister = 0xF
	// InstructionSize is the size of an instruction word in bytes.
	InstructionSize = 2
)

// Status reports whether a step advanced program execution.
type Status int

const (
	// Advanced means the instruction was executed and PC moved on.
	Advanced Status = iota
	// Waiting means the machine waits for a key press and PC stayed on the instruction.
	Waiting
)

func (s Status) String() string {
	switch s {
	case Advanced:
		return "advanced"
	case Waiting:
		return "waiting"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithRandom sets the source of random bytes used by the random instruction.
func WithRandom(random func() byte) Option {
	return func(m *Machine) {
		m.random = random
	}
}

// WithSeed seeds the random byte source for reproducible runs.
func WithSeed(seed uint64) Option {
	return func(m *Machine) {
		m.random = seededRandom(seed)
	}
}

// Machine is a CHIP-8 virtual machine.
type Machine struct {
	logger *log.Logger
	random func() byte

	memory Memory
	v      [RegisterCount]uint8
	i      uint16
	pc     uint16
	stack  [StackSize]uint16
	sp     int

	delayTimer uint8
	soundTimer uint8

	display *Framebuffer
	keys    *Keypad

	waiting       bool // a wait-for-key instruction is pending
	displayChange bool // framebuffer was modified since last ConsumeDisplayChange
}

// New returns a new machine in its initial state.
func New(options ...Option) *Machine {
	m := &Machine{
		display: &Framebuffer{},
		keys:    NewKeypad(),
	}
	for _, option := range options {
		option(m)
	}
	if m.logger == nil {
		m.logger = log.NewWithConfig(log.DefaultConfig())
	}
	if m.random == nil {
		m.random = seededRandom(uint64(time.Now().UnixNano()))
	}
	m.Reset()
	return m
}

// Reset returns the machine to its initial state: memory zeroed except for
// the font glyphs, registers, stack and timers zeroed, display cleared,
// all keys released and PC set to ProgramStart.
func (m *Machine) Reset() {
	m.memory.reset()
	m.v = [RegisterCount]uint8{}
	m.i = 0
	m.pc = ProgramStart
	m.stack = [StackSize]uint16{}
	m.sp = 0
	m.delayTimer = 0
	m.soundTimer = 0
	m.display.Clear()
	m.keys.ReleaseAll()
	m.waiting = false
	m.displayChange = true
}

// LoadProgram copies the program image verbatim into memory at ProgramStart.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%d bytes exceed %d bytes of program memory: %w",
			len(program), MaxProgramSize, ErrProgramTooLarge)
	}
	return m.memory.load(ProgramStart, program)
}

// Fetch returns the instruction word at PC without executing it.
func (m *Machine) Fetch() (uint16, error) {
	word, err := m.memory.ReadWord(m.pc)
	if err != nil {
		return 0, fmt.Errorf("fetching instruction at $%04X: %w", m.pc, err)
	}
	return word, nil
}

// Step fetches, decodes and executes a single instruction.
// On error the machine state is left as it was before the step.
func (m *Machine) Step() (Status, error) {
	word, err := m.Fetch()
	if err != nil {
		return Advanced, err
	}

	address := m.pc
	m.pc += InstructionSize

	status, err := m.execute(Decode(word))
	if err != nil {
		m.pc = address
		return Advanced, fmt.Errorf("executing $%04X at $%04X: %w", word, address, err)
	}
	return status, nil
}

// TickTimers decrements the delay and sound timers by one, stopping at zero.
func (m *Machine) TickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}

// SoundActive returns whether the sound timer is running.
func (m *Machine) SoundActive() bool {
	return m.soundTimer > 0
}

// ConsumeDisplayChange returns whether the framebuffer was modified since the
// last call and resets the change marker.
func (m *Machine) ConsumeDisplayChange() bool {
	changed := m.displayChange
	m.displayChange = false
	return changed
}

// Framebuffer returns the display of the machine.
func (m *Machine) Framebuffer() *Framebuffer {
	return m.display
}

// Keypad returns the key input latch of the machine.
func (m *Machine) Keypad() *Keypad {
	return m.keys
}

// Memory returns the memory of the machine.
func (m *Machine) Memory() *Memory {
	return &m.memory
}

// Registers returns a copy of the general-purpose registers.
func (m *Machine) Registers() [RegisterCount]uint8 {
	return m.v
}

// PC returns the address of the next instruction to fetch.
func (m *Machine) PC() uint16 {
	return m.pc
}

// I returns the index register.
func (m *Machine) I() uint16 {
	return m.i
}

// DelayTimer returns the delay timer value.
func (m *Machine) DelayTimer() uint8 {
	return m.delayTimer
}

// SoundTimer returns the sound timer value.
func (m *Machine) SoundTimer() uint8 {
	return m.soundTimer
}

// StackDepth returns the number of return addresses on the call stack.
func (m *Machine) StackDepth() int {
	return m.sp
}

// Waiting returns whether the machine is waiting for a key press.
func (m *Machine) Waiting() bool {
	return m.waiting
}

func (m *Machine) push(address uint16) error {
	if m.sp >= StackSize {
		return fmt.Errorf("pushing $%04X: %w", address, ErrStackOverflow)
	}
	m.stack[m.sp] = address
	m.sp++
	return nil
}

func (m *Machine) pop() (uint16, error) {
	if m.sp == 0 {
		return 0, ErrStackUnderflow
	}
	m.sp--
	return m.stack[m.sp], nil
}

func seededRandom(seed uint64) func() byte {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	return func() byte {
		return byte(rng.Uint32())
	}
}
