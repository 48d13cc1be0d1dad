package ops

import "github.com/born-ml/gradtensor/internal/tensor"

// NegGrad returns the rule for output = -x.
func NegGrad() GradFn {
	return GradFn{kind: KindNeg}
}

// grad_x = -outputGrad
func negBackward(outputGrad *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	return backend.Neg(outputGrad)
}
