// Package runner implements the frame loop that drives the virtual machine.
//
// Every frame the runner polls the frontend for key input, executes a fixed
// number of instructions, ticks the timers once and renders the display if
// it was modified.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the number of frames per second, the timers count down at this rate.
const FrameRate = 60

// Frontend is the display and input collaborator of the runner.
type Frontend interface {
	// PollInput transfers pending key events into the keypad.
	// It returns false if the user requested to quit.
	PollInput(keys *vm.Keypad) bool
	// Render displays the framebuffer.
	Render(fb *vm.Framebuffer) error
}

// Options controls the pacing of the runner.
type Options struct {
	CyclesPerFrame int           // instructions executed per frame
	FrameDuration  time.Duration // duration of a frame, defaults to 1/FrameRate seconds
	Trace          bool          // log every executed instruction
}

// Stats contains execution counters.
type Stats struct {
	Frames       uint64
	Instructions uint64
}

// Runner drives a machine frame by frame.
type Runner struct {
	logger  *log.Logger
	machine *vm.Machine
	opts    Options
	stats   Stats
}

// New returns a runner for the machine.
func New(logger *log.Logger, machine *vm.Machine, opts Options) *Runner {
	if opts.CyclesPerFrame < 1 {
		opts.CyclesPerFrame = 1
	}
	if opts.FrameDuration <= 0 {
		opts.FrameDuration = time.Second / FrameRate
	}
	return &Runner{
		logger:  logger,
		machine: machine,
		opts:    opts,
	}
}

// Machine returns the machine driven by the runner.
func (r *Runner) Machine() *vm.Machine {
	return r.machine
}

// Stats returns the execution counters.
func (r *Runner) Stats() Stats {
	return r.stats
}

// Frame executes the instructions of a single frame and ticks the timers.
// Execution of the frame ends early while the machine waits for a key press.
// A fatal machine error is returned and stops the frame.
func (r *Runner) Frame() error {
	for range r.opts.CyclesPerFrame {
		if r.opts.Trace {
			r.trace()
		}

		status, err := r.machine.Step()
		if err != nil {
			r.logger.Error("Machine stopped",
				log.Hex("pc", r.machine.PC()),
				log.Err(err))
			return fmt.Errorf("executing frame %d: %w", r.stats.Frames, err)
		}
		if status == vm.Waiting {
			break
		}
		r.stats.Instructions++
	}

	r.machine.TickTimers()
	r.stats.Frames++
	return nil
}

// Run executes frames at the frame rate until the context is canceled,
// the frontend requests to quit or the machine encounters a fatal error.
func (r *Runner) Run(ctx context.Context, frontend Frontend) error {
	ticker := time.NewTicker(r.opts.FrameDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if !frontend.PollInput(r.machine.Keypad()) {
				r.logger.Debug("Frontend requested quit")
				return nil
			}

			if err := r.Frame(); err != nil {
				return err
			}

			if r.machine.ConsumeDisplayChange() {
				if err := frontend.Render(r.machine.Framebuffer()); err != nil {
					return fmt.Errorf("rendering frame: %w", err)
				}
			}
		}
	}
}

// trace logs the instruction at PC.
func (r *Runner) trace() {
	pc := r.machine.PC()
	word, err := r.machine.Fetch()
	if err != nil {
		return
	}
	r.logger.Debug("Executing",
		log.Hex("pc", pc),
		log.Hex("opcode", word),
		log.String("instruction", disasm.Instruction(word)))
}
