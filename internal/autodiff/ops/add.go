package ops

import "github.com/born-ml/gradtensor/internal/tensor"

// AddGrad returns the rule for output = a + b with respect to the given side.
// Both sides share the same rule; the side is kept for diagnostics.
func AddGrad(side Operand) GradFn {
	return GradFn{kind: KindAdd, side: side}
}

// The gradient flows unchanged, as a copy: callers may accumulate into it.
func addBackward(outputGrad *tensor.RawTensor) *tensor.RawTensor {
	return outputGrad.Clone()
}
