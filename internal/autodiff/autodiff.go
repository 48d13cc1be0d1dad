// Package autodiff implements reverse-mode automatic differentiation over a
// dynamic computation graph.
//
// Architecture:
//   - Tensor: a numeric array plus, when RequiresGrad, a gradient slot and
//     the list of Dependency edges that produced it
//   - Dependency: a backward edge to one operand, carrying the local-gradient
//     rule (ops.GradFn) for that operand
//   - Operations (Neg, Add, Mul, MatMul, Sum) build a new Tensor and wire
//     one edge per differentiable operand
//   - Backward walks the edges from a root and accumulates gradients
//
// The graph is rebuilt on every forward pass; there is no tape or registry.
//
// Usage:
//
//	x, _ := autodiff.FromSlice([]float64{1, 2, 3}, tensor.Shape{3}, true)
//	y, _ := autodiff.Add(x, x)
//	loss, _ := y.Sum()
//	_ = loss.Backward(nil)
//	fmt.Println(x.Grad()) // [2 2 2]
package autodiff

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/gradtensor/internal/backend/cpu"
	"github.com/born-ml/gradtensor/internal/tensor"
)

// ErrInvalidOperation is returned by ZeroGrad and Backward when the tensor
// does not require gradients.
var ErrInvalidOperation = errors.New("invalid operation")

// Tensor is a numeric array optionally tracked for differentiation.
//
// A Tensor with requiresGrad == false never carries a gradient or
// dependencies. Tensors are not safe for concurrent use.
type Tensor struct {
	raw          *tensor.RawTensor
	backend      tensor.Backend
	requiresGrad bool
	grad         *Tensor      // same shape as raw; nil unless requiresGrad
	deps         []Dependency // empty for leaves
}

// New wraps raw as a leaf tensor on the CPU backend.
// The buffer is not copied.
func New(raw *tensor.RawTensor, requiresGrad bool) *Tensor {
	return NewWithBackend(raw, requiresGrad, cpu.New())
}

// NewWithBackend wraps raw as a leaf tensor computed with backend.
func NewWithBackend(raw *tensor.RawTensor, requiresGrad bool, backend tensor.Backend) *Tensor {
	t := &Tensor{
		raw:          raw,
		backend:      backend,
		requiresGrad: requiresGrad,
	}
	if requiresGrad {
		t.grad = t.zeroGrad()
	}
	return t
}

// FromSlice creates a leaf tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape tensor.Shape, requiresGrad bool) (*Tensor, error) {
	raw, err := tensor.FromSlice(data, shape)
	if err != nil {
		return nil, err
	}
	return New(raw, requiresGrad), nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() tensor.Shape {
	return t.raw.Shape()
}

// Raw returns the underlying buffer.
func (t *Tensor) Raw() *tensor.RawTensor {
	return t.raw
}

// Data returns a zero-copy view of the tensor's values.
func (t *Tensor) Data() []float64 {
	return t.raw.Data()
}

// Item returns the value of a single-element tensor.
func (t *Tensor) Item() float64 {
	return t.raw.Item()
}

// Backend returns the computation backend.
func (t *Tensor) Backend() tensor.Backend {
	return t.backend
}

// RequiresGrad reports whether gradients are tracked for this tensor.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Grad returns the accumulated gradient, or nil if the tensor does not
// require gradients.
func (t *Tensor) Grad() *Tensor {
	return t.grad
}

// Dependencies returns a copy of the tensor's backward edges, in the order
// they were recorded.
func (t *Tensor) Dependencies() []Dependency {
	return append([]Dependency(nil), t.deps...)
}

// IsLeaf reports whether the tensor has no backward edges.
func (t *Tensor) IsLeaf() bool {
	return len(t.deps) == 0
}

// ZeroGrad resets the gradient to a fresh zero tensor.
// Gradient tensors previously returned by Grad are left untouched.
func (t *Tensor) ZeroGrad() error {
	if !t.requiresGrad {
		return errors.Wrap(ErrInvalidOperation, "zero_grad on a tensor that does not require grad")
	}
	t.grad = t.zeroGrad()
	return nil
}

func (t *Tensor) zeroGrad() *Tensor {
	return &Tensor{
		raw:     tensor.ZerosLike(t.raw),
		backend: t.backend,
	}
}

// Detach returns a leaf tensor that shares the same data but doesn't track
// gradients. Operations on it are never recorded.
func (t *Tensor) Detach() *Tensor {
	return NewWithBackend(t.raw, false, t.backend)
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	if !t.requiresGrad {
		return fmt.Sprintf("Tensor(%v)", t.raw)
	}
	return fmt.Sprintf("Tensor(%v, requires_grad=true, deps=%d)", t.raw, len(t.deps))
}

// header is the short form used inside edge and graph diagnostics.
func (t *Tensor) header() string {
	s := "Tensor" + t.Shape().String()
	if t.requiresGrad {
		s += " requires_grad"
	}
	return s
}
