package vm

import "errors"

var (
	// ErrStackOverflow is returned when a call is executed with a full call stack.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrStackUnderflow is returned when a return is executed with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
	// ErrAddressOutOfRange is returned for memory accesses outside of 0x000-0xFFF.
	ErrAddressOutOfRange = errors.New("memory address out of range")
	// ErrProgramTooLarge is returned when a program image does not fit into program memory.
	ErrProgramTooLarge = errors.New("program too large")
)
