// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Operations on tensors created with requiresGrad build a computation graph
// as they run. Calling Backward on a scalar result walks that graph and
// accumulates gradients into every differentiable tensor.
//
// Example:
//
//	import (
//	    "github.com/born-ml/gradtensor/autodiff"
//	    "github.com/born-ml/gradtensor/tensor"
//	)
//
//	func main() {
//	    x, _ := autodiff.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, false)
//	    w, _ := autodiff.FromSlice([]float64{1, 0, 0, 1, 1, 1}, tensor.Shape{3, 2}, true)
//
//	    y, _ := autodiff.MatMul(x, w)
//	    loss, _ := autodiff.Sum(y)
//	    _ = loss.Backward(nil)
//
//	    fmt.Println(w.Grad()) // dloss/dw
//	}
package autodiff

import (
	"github.com/born-ml/gradtensor/internal/autodiff"
	"github.com/born-ml/gradtensor/internal/autodiff/ops"
	"github.com/born-ml/gradtensor/tensor"
)

// Tensor is a numeric array optionally tracked for differentiation.
type Tensor = autodiff.Tensor

// Dependency is a backward edge from an operation's output to one input.
type Dependency = autodiff.Dependency

// GradFn is the local-gradient rule carried by a Dependency.
type GradFn = ops.GradFn

// OpKind identifies the operation that produced a tensor.
type OpKind = ops.Kind

// Operation kinds.
const (
	OpNeg    OpKind = ops.KindNeg
	OpAdd    OpKind = ops.KindAdd
	OpMul    OpKind = ops.KindMul
	OpMatMul OpKind = ops.KindMatMul
	OpSum    OpKind = ops.KindSum
)

// Strategy selects the backward traversal.
type Strategy = autodiff.Strategy

// Backward strategies.
const (
	Recursive   Strategy = autodiff.Recursive
	Topological Strategy = autodiff.Topological
)

// Config controls the backward pass.
type Config = autodiff.Config

// ErrInvalidOperation is returned by ZeroGrad and Backward on tensors that
// do not require gradients.
var ErrInvalidOperation = autodiff.ErrInvalidOperation

// New wraps raw as a leaf tensor on the CPU backend.
func New(raw *tensor.RawTensor, requiresGrad bool) *Tensor {
	return autodiff.New(raw, requiresGrad)
}

// NewWithBackend wraps raw as a leaf tensor computed with backend.
func NewWithBackend(raw *tensor.RawTensor, requiresGrad bool, backend tensor.Backend) *Tensor {
	return autodiff.NewWithBackend(raw, requiresGrad, backend)
}

// FromSlice creates a leaf tensor from a copy of data.
func FromSlice(data []float64, shape tensor.Shape, requiresGrad bool) (*Tensor, error) {
	return autodiff.FromSlice(data, shape, requiresGrad)
}

// Neg returns -x.
func Neg(x *Tensor) (*Tensor, error) { return autodiff.Neg(x) }

// Add returns a + b; shapes must match exactly.
func Add(a, b *Tensor) (*Tensor, error) { return autodiff.Add(a, b) }

// Mul returns a * b element-wise; shapes must match exactly.
func Mul(a, b *Tensor) (*Tensor, error) { return autodiff.Mul(a, b) }

// MatMul returns the matrix product a @ b.
func MatMul(a, b *Tensor) (*Tensor, error) { return autodiff.MatMul(a, b) }

// Sum reduces x to a 0-D tensor.
func Sum(x *Tensor) (*Tensor, error) { return autodiff.Sum(x) }

// DefaultConfig returns the default backward configuration.
func DefaultConfig() Config {
	return autodiff.DefaultConfig()
}

// ParseStrategy parses "recursive" or "topological".
func ParseStrategy(name string) (Strategy, error) {
	return autodiff.ParseStrategy(name)
}

// FormatGraph renders the dependency graph below root for debugging.
func FormatGraph(root *Tensor) string {
	return autodiff.FormatGraph(root)
}

// NumericalGradient estimates d f / d x[index] by a forward difference.
func NumericalGradient(f func() (float64, error), x *tensor.RawTensor, index int, delta float64) (float64, error) {
	return autodiff.NumericalGradient(f, x, index, delta)
}
