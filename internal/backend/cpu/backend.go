// Package cpu implements the CPU backend on top of gonum's floats and BLAS kernels.
package cpu

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/gradtensor/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
// It is stateless and safe to share.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition. Shapes must match exactly.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkSameShape("add", a, b); err != nil {
		return nil, err
	}
	result := tensor.ZerosLike(a)
	floats.AddTo(result.Data(), a.Data(), b.Data())
	return result, nil
}

// Mul performs element-wise (Hadamard) multiplication. Shapes must match exactly.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := checkSameShape("mul", a, b); err != nil {
		return nil, err
	}
	result := tensor.ZerosLike(a)
	floats.MulTo(result.Data(), a.Data(), b.Data())
	return result, nil
}

// Neg returns -x.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.Scale(x, -1)
}

// Scale returns s*x.
func (cpu *CPUBackend) Scale(x *tensor.RawTensor, s float64) *tensor.RawTensor {
	result := tensor.ZerosLike(x)
	floats.ScaleTo(result.Data(), s, x.Data())
	return result
}

// AddInPlace performs dst += src.
func (cpu *CPUBackend) AddInPlace(dst, src *tensor.RawTensor) error {
	if err := checkSameShape("add_inplace", dst, src); err != nil {
		return err
	}
	floats.Add(dst.Data(), src.Data())
	return nil
}

// checkSameShape rejects operand pairs that would need broadcasting.
func checkSameShape(op string, a, b *tensor.RawTensor) error {
	if !a.Shape().Equal(b.Shape()) {
		return errors.Wrapf(tensor.ErrShapeMismatch, "%s: %v vs %v", op, a.Shape(), b.Shape())
	}
	return nil
}
