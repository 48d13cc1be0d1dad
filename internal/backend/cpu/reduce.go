package cpu

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/gradtensor/internal/tensor"
)

// Sum computes the sum of all elements, returning a 0-D tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	return tensor.Scalar(floats.Sum(x.Data()))
}
