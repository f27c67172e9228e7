// Package desktop implements a windowed frontend based on ebiten.
package desktop

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

var (
	colorOn  = color.RGBA{R: 0xE0, G: 0xF0, B: 0xE0, A: 0xFF}
	colorOff = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xFF}
)

// Options configures the desktop window.
type Options struct {
	Title string
	Scale int
}

// Game implements ebiten.Game and runner.Frontend for a machine runner.
type Game struct {
	ctx    context.Context
	logger *log.Logger
	runner *runner.Runner
	scale  int

	display *ebiten.Image
	pixels  []byte
	face    *text.GoXFace
	paused  bool
	err     error
}

// New returns a desktop frontend for the runner.
func New(ctx context.Context, logger *log.Logger, r *runner.Runner, opts Options) *Game {
	return &Game{
		ctx:    ctx,
		logger: logger,
		runner: r,
		scale:  opts.Scale,
		pixels: make([]byte, vm.DisplayWidth*vm.DisplayHeight*4),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Run opens the window and runs the game loop until the window is closed,
// the context is canceled or the machine stops with an error.
func Run(ctx context.Context, logger *log.Logger, r *runner.Runner, opts Options) error {
	g := New(ctx, logger, r, opts)

	ebiten.SetWindowSize(vm.DisplayWidth*opts.Scale, vm.DisplayHeight*opts.Scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(runner.FrameRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running game loop: %w", err)
	}
	if g.err != nil {
		return g.err
	}
	return ctx.Err()
}

// Update is called by ebiten once per tick and runs a single machine frame.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if !g.PollInput(g.runner.Machine().Keypad()) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshot()
	}
	if g.paused {
		return nil
	}

	if err := g.runner.Frame(); err != nil {
		g.err = err
		return ebiten.Termination
	}

	machine := g.runner.Machine()
	if machine.ConsumeDisplayChange() {
		return g.Render(machine.Framebuffer())
	}
	return nil
}

// PollInput transfers key presses and releases of the mapped keyboard keys into the keypad.
// It returns false if Escape was pressed.
func (g *Game) PollInput(keys *vm.Keypad) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return false
	}

	for _, mapping := range keyMap {
		switch {
		case inpututil.IsKeyJustPressed(mapping.key):
			keys.KeyDown(mapping.symbol)
		case inpututil.IsKeyJustReleased(mapping.key):
			keys.KeyUp(mapping.symbol)
		}
	}
	return true
}

// Render converts the framebuffer into the pixel buffer that is drawn on the next Draw call.
func (g *Game) Render(fb *vm.Framebuffer) error {
	fillPixels(g.pixels, fb)
	return nil
}

// Draw is called by ebiten to draw the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.display == nil {
		g.display = ebiten.NewImage(vm.DisplayWidth, vm.DisplayHeight)
	}
	g.display.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.display, op)

	if g.paused {
		textOp := &text.DrawOptions{}
		textOp.GeoM.Translate(4, 4)
		textOp.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, "PAUSED", g.face, textOp)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return vm.DisplayWidth * g.scale, vm.DisplayHeight * g.scale
}

func (g *Game) screenshot() {
	name := fmt.Sprintf("chip8vm-%s.png", time.Now().Format("20060102-150405"))
	err := SaveScreenshot(name, g.runner.Machine().Framebuffer(), g.scale)
	if err != nil {
		g.logger.Error("Saving screenshot failed", log.Err(err))
		return
	}
	g.logger.Info("Saved screenshot", log.String("file", name))
}

// fillPixels converts the framebuffer to RGBA pixels.
func fillPixels(dst []byte, fb *vm.Framebuffer) {
	for i, lit := range fb.Snapshot() {
		c := colorOff
		if lit {
			c = colorOn
		}
		dst[4*i] = c.R
		dst[4*i+1] = c.G
		dst[4*i+2] = c.B
		dst[4*i+3] = c.A
	}
}
