package ops

import "github.com/born-ml/gradtensor/internal/tensor"

// MulGrad returns the rule for output = a * b with respect to side.
// other is the buffer of the opposite operand.
func MulGrad(side Operand, other *tensor.RawTensor) GradFn {
	return GradFn{kind: KindMul, side: side, other: other}
}

// grad_a = outputGrad * b, grad_b = outputGrad * a
func mulBackward(outputGrad, other *tensor.RawTensor, backend tensor.Backend) (*tensor.RawTensor, error) {
	return backend.Mul(outputGrad, other)
}
