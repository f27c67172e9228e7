package vm

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Framebuffer is the 64x32 monochrome display, stored row-major.
type Framebuffer struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

// Clear unsets all pixels.
func (f *Framebuffer) Clear() {
	f.pixels = [DisplayWidth * DisplayHeight]bool{}
}

// Pixel returns whether the pixel at the given coordinates is set.
// Coordinates wrap around the display edges.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f.pixels[index(x, y)]
}

// Toggle XORs the pixel at the given coordinates and returns true if the
// pixel was set before and is now unset. Coordinates wrap around the display edges.
func (f *Framebuffer) Toggle(x, y int) bool {
	i := index(x, y)
	collision := f.pixels[i]
	f.pixels[i] = !f.pixels[i]
	return collision
}

// DrawSprite XORs the sprite rows onto the display with the top left corner
// at the given coordinates. Every pixel wraps around on both axes.
// It returns true if any set pixel was unset.
func (f *Framebuffer) DrawSprite(x, y int, rows []byte) bool {
	collision := false
	for row, bits := range rows {
		for col := range 8 {
			if bits&(0x80>>col) == 0 {
				continue
			}
			if f.Toggle(x+col, y+row) {
				collision = true
			}
		}
	}
	return collision
}

// Snapshot returns a copy of all pixels in row-major order.
func (f *Framebuffer) Snapshot() [DisplayWidth * DisplayHeight]bool {
	return f.pixels
}

// Lit returns the number of set pixels.
func (f *Framebuffer) Lit() int {
	n := 0
	for _, p := range f.pixels {
		if p {
			n++
		}
	}
	return n
}

func index(x, y int) int {
	x %= DisplayWidth
	if x < 0 {
		x += DisplayWidth
	}
	y %= DisplayHeight
	if y < 0 {
		y += DisplayHeight
	}
	return y*DisplayWidth + x
}
