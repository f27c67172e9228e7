package desktop

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/retroenv/chip8vm/internal/vm"
	"golang.org/x/image/draw"
)

// Screenshot returns the framebuffer as an image scaled by the given factor.
func Screenshot(fb *vm.Framebuffer, scale int) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, vm.DisplayWidth, vm.DisplayHeight))
	fillPixels(src.Pix, fb)

	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, vm.DisplayWidth*scale, vm.DisplayHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SaveScreenshot writes the scaled framebuffer as PNG file.
func SaveScreenshot(path string, fb *vm.Framebuffer, scale int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}

	if err := png.Encode(file, Screenshot(fb, scale)); err != nil {
		_ = file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", path, err)
	}
	return nil
}
