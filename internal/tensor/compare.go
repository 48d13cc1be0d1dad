package tensor

import "gonum.org/v1/gonum/floats"

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most tol, absolutely or relatively.
func AllClose(a, b *RawTensor, tol float64) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	return floats.EqualApprox(a.data, b.data, tol)
}
