// Package options contains the program options.
package options

// Supported frontends.
const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

// Default option values.
const (
	DefaultCyclesPerFrame = 10
	DefaultScale          = 10
)

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to run
}

// Flags contains behavior options.
type Flags struct {
	Frontend  string // desktop or terminal
	Disasm    bool   // print a disassembly listing instead of running
	Statsview bool   // launch the runtime statistics viewer
	Trace     bool   // log every executed instruction
	Debug     bool   // enable debug logging
	Quiet     bool   // only log errors
}

// Machine contains options that control the virtual machine and its pacing.
type Machine struct {
	CyclesPerFrame int    // instructions executed per 60 Hz frame
	Scale          int    // desktop window pixel scale
	Seed           uint64 // random seed, 0 seeds from the current time
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Machine
}

// New returns program options with default values.
func New() Program {
	return Program{
		Flags: Flags{
			Frontend: FrontendDesktop,
		},
		Machine: Machine{
			CyclesPerFrame: DefaultCyclesPerFrame,
			Scale:          DefaultScale,
		},
	}
}
