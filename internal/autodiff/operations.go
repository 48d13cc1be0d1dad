package autodiff

import (
	"github.com/born-ml/gradtensor/internal/autodiff/ops"
	"github.com/born-ml/gradtensor/internal/tensor"
)

// Neg returns -x.
func Neg(x *Tensor) (*Tensor, error) {
	out := x.backend.Neg(x.raw)

	var deps []Dependency
	deps = track(deps, ops.KindNeg, x, ops.NegGrad())

	return result(out, x.backend, x.requiresGrad, deps), nil
}

// Add returns a + b. Shapes must match exactly.
func Add(a, b *Tensor) (*Tensor, error) {
	out, err := a.backend.Add(a.raw, b.raw)
	if err != nil {
		return nil, err
	}

	var deps []Dependency
	deps = track(deps, ops.KindAdd, a, ops.AddGrad(ops.Left))
	deps = track(deps, ops.KindAdd, b, ops.AddGrad(ops.Right))

	return result(out, a.backend, a.requiresGrad || b.requiresGrad, deps), nil
}

// Mul returns the element-wise product a * b. Shapes must match exactly.
func Mul(a, b *Tensor) (*Tensor, error) {
	out, err := a.backend.Mul(a.raw, b.raw)
	if err != nil {
		return nil, err
	}

	var deps []Dependency
	deps = track(deps, ops.KindMul, a, ops.MulGrad(ops.Left, b.raw))
	deps = track(deps, ops.KindMul, b, ops.MulGrad(ops.Right, a.raw))

	return result(out, a.backend, a.requiresGrad || b.requiresGrad, deps), nil
}

// MatMul returns the matrix product a @ b of 2-D tensors.
func MatMul(a, b *Tensor) (*Tensor, error) {
	out, err := a.backend.MatMul(a.raw, b.raw)
	if err != nil {
		return nil, err
	}

	var deps []Dependency
	deps = track(deps, ops.KindMatMul, a, ops.MatMulGrad(ops.Left, b.raw))
	deps = track(deps, ops.KindMatMul, b, ops.MatMulGrad(ops.Right, a.raw))

	return result(out, a.backend, a.requiresGrad || b.requiresGrad, deps), nil
}

// Sum reduces every element of x to a 0-D tensor.
// Reduction along a single axis is not supported.
func Sum(x *Tensor) (*Tensor, error) {
	out := x.backend.Sum(x.raw)

	var deps []Dependency
	deps = track(deps, ops.KindSum, x, ops.SumGrad(x.Shape()))

	return result(out, x.backend, x.requiresGrad, deps), nil
}

// Neg returns -t.
func (t *Tensor) Neg() (*Tensor, error) { return Neg(t) }

// Add returns t + other.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) { return Add(t, other) }

// Mul returns t * other element-wise.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) { return Mul(t, other) }

// MatMul returns t @ other.
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) { return MatMul(t, other) }

// Sum reduces t to a 0-D tensor.
func (t *Tensor) Sum() (*Tensor, error) { return Sum(t) }

// track appends an edge to input only when input requires gradients.
func track(deps []Dependency, op ops.Kind, input *Tensor, fn ops.GradFn) []Dependency {
	if !input.requiresGrad {
		return deps
	}
	return append(deps, Dependency{Op: op, Input: input, Fn: fn})
}

// result wraps an operation's output. A non-differentiable result is a leaf.
func result(raw *tensor.RawTensor, backend tensor.Backend, requiresGrad bool, deps []Dependency) *Tensor {
	t := NewWithBackend(raw, requiresGrad, backend)
	if requiresGrad {
		t.deps = deps
	}
	return t
}
