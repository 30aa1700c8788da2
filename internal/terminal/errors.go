package terminal

import (
	"errors"
	"fmt"
)

var (
	ErrSessionUsed = errors.New("terminal session already used")
)

// SetupError is returned when the terminal mode could not be captured or
// restored
type SetupError struct {
	Op  string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// RenderError is returned when a frame could not be written or the program
// crashed while drawing
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// InputError is returned when reading key events failed
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
