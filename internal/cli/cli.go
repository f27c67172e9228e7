// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/chip8vm/internal/options"
)

// Accepted option ranges.
const (
	maxCyclesPerFrame = 1000
	maxScale          = 40
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args)
}

func parseArgs(arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(arguments[0], flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8vm [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	if len(args) > 1 {
		arg := args[1]
		if arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
		return fmt.Errorf("only one ROM file can be run, got %d", len(args))
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if opts.Frontend == "tui" {
		opts.Frontend = options.FrontendTerminal
	}

	validFrontends := []string{options.FrontendDesktop, options.FrontendTerminal}
	valid := false
	for _, frontend := range validFrontends {
		if opts.Frontend == frontend {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(validFrontends, ", "))
	}

	if opts.CyclesPerFrame < 1 || opts.CyclesPerFrame > maxCyclesPerFrame {
		return fmt.Errorf("cycles per frame %d out of range 1-%d", opts.CyclesPerFrame, maxCyclesPerFrame)
	}
	if opts.Scale < 1 || opts.Scale > maxScale {
		return fmt.Errorf("scale %d out of range 1-%d", opts.Scale, maxScale)
	}

	// tracing output is logged at debug level
	if opts.Trace {
		opts.Debug = true
		opts.Quiet = false
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "f", opts.Frontend, "frontend to use (desktop/terminal)")
	flags.IntVar(&opts.CyclesPerFrame, "cpf", opts.CyclesPerFrame, "instructions executed per 60 Hz frame")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "desktop window pixel scale")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random number seed, 0 seeds from the current time")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the ROM instead of running it")
	flags.BoolVar(&opts.Statsview, "statsview", false, "launch the runtime statistics web viewer")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
