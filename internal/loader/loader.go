// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8vm/internal/vm"
)

// ErrEmptyProgram is returned for ROM files without any content.
var ErrEmptyProgram = errors.New("empty program")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the raw program image from the given file.
// The image is validated to fit into the program memory of the machine.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(file)
}

// Read reads the raw program image from the reader.
func (l *Loader) Read(reader io.Reader) ([]byte, error) {
	// read one byte more than fits to detect oversized images
	data, err := io.ReadAll(io.LimitReader(reader, vm.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	switch {
	case len(data) == 0:
		return nil, ErrEmptyProgram
	case len(data) > vm.MaxProgramSize:
		return nil, fmt.Errorf("program exceeds %d bytes: %w", vm.MaxProgramSize, vm.ErrProgramTooLarge)
	}
	return data, nil
}
