package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds matches every OutOfBoundsError via errors.Is.
var ErrOutOfBounds = errors.New("position out of map bounds")

// OutOfBoundsError reports a query at coordinates outside the map.
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position (%d,%d) out of map bounds", e.X, e.Y)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
