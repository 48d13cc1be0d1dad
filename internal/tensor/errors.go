package tensor

import "errors"

// Common errors.
var (
	// ErrShapeMismatch is returned when operand shapes are incompatible for
	// an operation: unequal shapes for elementwise ops, or unequal inner
	// dimensions for matrix multiplication.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidShape is returned when a shape has non-positive dimensions,
	// the wrong rank for an operation, or disagrees with the supplied data.
	ErrInvalidShape = errors.New("invalid shape")
)
