package raycaster

import "errors"

var (
	// ErrNotVector is raised (as a panic) when a vector-only operation gets a point.
	ErrNotVector = errors.New("raycaster: operation requires a vector (w == 0)")
	// ErrNotSquare is returned when matrix data length is not a perfect square.
	ErrNotSquare = errors.New("raycaster: matrix data is not a perfect square")
	// ErrSizeMismatch is returned or raised when operand sizes do not fit.
	ErrSizeMismatch = errors.New("raycaster: size mismatch")
	// ErrSingular is returned when inverting a matrix whose determinant is zero.
	ErrSingular = errors.New("raycaster: matrix is singular")
	// ErrOutOfRange is returned for tuple component or canvas pixel access outside bounds.
	ErrOutOfRange = errors.New("raycaster: index out of range")
	// ErrInvalidConfig is returned when a render config cannot be built.
	ErrInvalidConfig = errors.New("raycaster: invalid config")
)
