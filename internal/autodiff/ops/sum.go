package ops

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtensor/internal/tensor"
)

// SumGrad returns the rule for a full reduction of a tensor of the given shape.
func SumGrad(inputShape tensor.Shape) GradFn {
	return GradFn{kind: KindSum, shape: inputShape.Clone()}
}

// The scalar outputGrad is broadcast over the input: grad_x = ones_like(x) * g.
func sumBackward(outputGrad *tensor.RawTensor, inputShape tensor.Shape, backend tensor.Backend) (*tensor.RawTensor, error) {
	if outputGrad.NumElements() != 1 {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch,
			"sum backward: expected a single-element gradient, got shape %v", outputGrad.Shape())
	}
	return backend.Scale(tensor.Ones(inputShape), outputGrad.Data()[0]), nil
}
