package scale

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoot is returned for a root frequency that is not a positive finite number
	ErrInvalidRoot = errors.New("root frequency must be positive")
	// ErrInvalidOctaveCount is returned for an octave count below one
	ErrInvalidOctaveCount = errors.New("octave count must be positive")
	// ErrNoCandidate is returned when octave reduction yields no frequency at or above the root
	ErrNoCandidate = errors.New("no octave-reduced candidate at or above root")
	// ErrOverflow is returned when a fifth or a chained octave seed exceeds the float64 range
	ErrOverflow = errors.New("frequency overflows float64 range")
)

// GenerationError describes a fifth that could not be placed in the root's octave band
type GenerationError struct {
	Root      float64
	Frequency float64
	Step      int
	Err       error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("scale generation failed at step %d (root %g Hz, fifth %g Hz): %v", e.Step, e.Root, e.Frequency, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
