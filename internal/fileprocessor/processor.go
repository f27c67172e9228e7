// Package fileprocessor handles ROM loading and running operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/chip8vm/internal/app"
	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/frontend/desktop"
	"github.com/retroenv/chip8vm/internal/frontend/terminal"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/chip8vm/internal/statsview"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow: the ROM is
// loaded and either disassembled to output or run on the selected frontend.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, output io.Writer) error {
	program, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	if opts.Disasm {
		if err := disasm.Listing(output, program); err != nil {
			return fmt.Errorf("disassembling: %w", err)
		}
		return nil
	}

	app.PrintInfo(logger, opts, program)

	r, err := setupRunner(logger, opts, program)
	if err != nil {
		return fmt.Errorf("setting up machine: %w", err)
	}

	if opts.Statsview {
		stop := statsview.Launch(logger)
		defer stop()
	}

	return run(ctx, logger, opts, r)
}

func setupRunner(logger *log.Logger, opts options.Program, program []byte) (*runner.Runner, error) {
	machineOptions := []vm.Option{vm.WithLogger(logger)}
	if opts.Seed != 0 {
		machineOptions = append(machineOptions, vm.WithSeed(opts.Seed))
	}

	machine := vm.New(machineOptions...)
	if err := machine.LoadProgram(program); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	r := runner.New(logger, machine, runner.Options{
		CyclesPerFrame: opts.CyclesPerFrame,
		Trace:          opts.Trace,
	})
	return r, nil
}

func run(ctx context.Context, logger *log.Logger, opts options.Program, r *runner.Runner) error {
	switch opts.Frontend {
	case options.FrontendTerminal:
		return runTerminal(ctx, r)

	case options.FrontendDesktop:
		return desktop.Run(ctx, logger, r, desktop.Options{
			Title: "chip8vm - " + opts.Input,
			Scale: opts.Scale,
		})

	default:
		return fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}

func runTerminal(ctx context.Context, r *runner.Runner) (err error) {
	t := terminal.New(os.Stdin, os.Stdout)
	if err := t.Start(); err != nil {
		return fmt.Errorf("starting terminal: %w", err)
	}
	defer func() {
		if stopErr := t.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	return r.Run(ctx, t)
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8vm", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
