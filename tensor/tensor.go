// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gradtensor/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a 2×3 matrix; Shape{} is a scalar.
type Shape = tensor.Shape

// RawTensor is the dense float64 array all tensors are built on.
//
// Example:
//
//	raw, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	raw.At(1, 0)      // 3
//	raw.Data()[0] = 9 // zero-copy write
type RawTensor = tensor.RawTensor

// Backend is the interface implemented by compute backends.
type Backend = tensor.Backend

// Errors returned by array operations. Match them with errors.Is.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrInvalidShape  = tensor.ErrInvalidShape
)

// NewRaw creates a zero-filled tensor.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// FromSlice creates a tensor from a copy of data.
func FromSlice(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice(data []float64, shape Shape) *RawTensor {
	return tensor.MustFromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *RawTensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *RawTensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) *RawTensor {
	return tensor.Full(shape, value)
}

// Scalar creates a 0-D tensor.
func Scalar(value float64) *RawTensor {
	return tensor.Scalar(value)
}

// ZerosLike creates a zero tensor with the shape of t.
func ZerosLike(t *RawTensor) *RawTensor {
	return tensor.ZerosLike(t)
}

// OnesLike creates a tensor of ones with the shape of t.
func OnesLike(t *RawTensor) *RawTensor {
	return tensor.OnesLike(t)
}

// AllClose reports whether a and b have equal shapes and values within tol.
func AllClose(a, b *RawTensor, tol float64) bool {
	return tensor.AllClose(a, b, tol)
}
