package batch

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when buffers or destination slices differ
// in length.
var ErrLengthMismatch = errors.New("batch: length mismatch")

func checkLength(op string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s got %d, want %d", ErrLengthMismatch, op, got, want)
	}
	return nil
}
