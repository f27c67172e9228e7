package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestMachine returns a machine with the given instruction words loaded at ProgramStart.
func newTestMachine(t *testing.T, words ...uint16) *Machine {
	t.Helper()

	m := New(WithLogger(log.NewTestLogger(t)), WithRandom(func() byte { return 0xA5 }))
	program := make([]byte, 0, len(words)*2)
	for _, w := range words {
		program = append(program, byte(w>>8), byte(w))
	}
	assert.NoError(t, m.LoadProgram(program))
	return m
}

// step executes n instructions and fails the test on any error.
func step(t *testing.T, m *Machine, n int) {
	t.Helper()

	for range n {
		_, err := m.Step()
		assert.NoError(t, err)
	}
}
