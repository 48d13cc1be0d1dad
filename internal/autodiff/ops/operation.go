// Package ops defines the local-gradient rules for automatic differentiation.
//
// Each rule maps the gradient with respect to an operation's output to the
// gradient with respect to one of its inputs (a vector-Jacobian product):
//   - Neg: d(-x)/dx = -1, so grad_x = -outputGrad
//   - Add: d(a+b)/da = d(a+b)/db = 1, so grad = outputGrad
//   - Mul: d(a*b)/da = b, d(a*b)/db = a
//   - MatMul: d(A@B)/dA = grad@B^T, d(A@B)/dB = A^T@grad
//   - Sum: d(sum(x))/dx = ones_like(x), scaled by the scalar outputGrad
//
// A GradFn is a tagged value over the closed set of Kinds, not a closure.
package ops

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/gradtensor/internal/tensor"
)

// Kind identifies the operation that produced a tensor.
type Kind int

// Supported operations. The zero value is deliberately invalid.
const (
	KindInvalid Kind = iota
	KindNeg
	KindAdd
	KindMul
	KindMatMul
	KindSum
)

// String returns the operation name.
func (k Kind) String() string {
	switch k {
	case KindNeg:
		return "neg"
	case KindAdd:
		return "add"
	case KindMul:
		return "mul"
	case KindMatMul:
		return "matmul"
	case KindSum:
		return "sum"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Operand is the position of an input within its operation.
type Operand int

// Operand positions. Unary operations only use Left.
const (
	Left Operand = iota
	Right
)

// String returns "left" or "right".
func (o Operand) String() string {
	if o == Right {
		return "right"
	}
	return "left"
}

// GradFn is the local-gradient rule attached to one dependency edge.
//
// Mul and MatMul capture the sibling operand's buffer when the edge is
// built; Sum captures the shape of its input.
type GradFn struct {
	kind  Kind
	side  Operand
	other *tensor.RawTensor
	shape tensor.Shape
}

// Kind returns the operation this rule belongs to.
func (fn GradFn) Kind() Kind {
	return fn.kind
}

// Side returns which operand the rule differentiates with respect to.
func (fn GradFn) Side() Operand {
	return fn.side
}

// Apply maps the output gradient to the gradient of this rule's input.
// The result never aliases outputGrad.
func (fn GradFn) Apply(outputGrad *tensor.RawTensor, backend tensor.Backend) (*tensor.RawTensor, error) {
	switch fn.kind {
	case KindNeg:
		return negBackward(outputGrad, backend), nil
	case KindAdd:
		return addBackward(outputGrad), nil
	case KindMul:
		return mulBackward(outputGrad, fn.other, backend)
	case KindMatMul:
		return matmulBackward(outputGrad, fn.other, fn.side, backend)
	case KindSum:
		return sumBackward(outputGrad, fn.shape, backend)
	default:
		return nil, errors.Errorf("ops: no gradient rule for %v", fn.kind)
	}
}

// String describes the rule, e.g. "matmul/left".
func (fn GradFn) String() string {
	switch fn.kind {
	case KindMul, KindMatMul, KindAdd:
		return fn.kind.String() + "/" + fn.side.String()
	default:
		return fn.kind.String()
	}
}
