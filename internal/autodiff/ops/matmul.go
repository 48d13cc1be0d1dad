package ops

import "github.com/born-ml/gradtensor/internal/tensor"

// MatMulGrad returns the rule for output = a @ b with respect to side.
// other is the buffer of the opposite operand.
func MatMulGrad(side Operand, other *tensor.RawTensor) GradFn {
	return GradFn{kind: KindMatMul, side: side, other: other}
}

// matmulBackward computes
//
//	grad_a = outputGrad @ b^T   (side == Left, other == b)
//	grad_b = a^T @ outputGrad   (side == Right, other == a)
func matmulBackward(outputGrad, other *tensor.RawTensor, side Operand, backend tensor.Backend) (*tensor.RawTensor, error) {
	otherT, err := backend.Transpose(other)
	if err != nil {
		return nil, err
	}
	if side == Left {
		return backend.MatMul(outputGrad, otherT)
	}
	return backend.MatMul(otherT, outputGrad)
}
