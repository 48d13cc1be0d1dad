package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtensor/internal/tensor"
)

// Backward computes gradients of t with respect to every differentiable
// tensor reachable through its dependencies, using DefaultConfig.
//
// seed is the upstream gradient d(root)/d(t); nil means ones of t's shape,
// which is the usual choice for a scalar loss. Gradients are accumulated,
// never overwritten: call ZeroGrad between passes.
//
// Example:
//
//	loss, _ := autodiff.Sum(y)
//	if err := loss.Backward(nil); err != nil {
//	    return err
//	}
//	w.Grad().Data() // dloss/dw
func (t *Tensor) Backward(seed *tensor.RawTensor) error {
	return t.BackwardWithConfig(seed, DefaultConfig())
}

// BackwardWithConfig is Backward with an explicit traversal strategy.
// Both strategies produce the same gradients.
func (t *Tensor) BackwardWithConfig(seed *tensor.RawTensor, cfg Config) error {
	if !t.requiresGrad {
		return errors.Wrap(ErrInvalidOperation, "backward on a tensor that does not require grad")
	}

	if seed == nil {
		seed = tensor.OnesLike(t.raw)
	} else if !seed.Shape().Equal(t.Shape()) {
		return errors.Wrapf(tensor.ErrShapeMismatch, "backward: seed shape %v, tensor shape %v",
			seed.Shape(), t.Shape())
	}

	switch cfg.Strategy {
	case Recursive:
		return t.backwardRecursive(seed)
	case Topological:
		return t.backwardTopological(seed)
	default:
		return errors.Errorf("backward: unknown strategy %d", int(cfg.Strategy))
	}
}

// backwardRecursive accumulates grad into t, then recurses down each edge in
// the order it was recorded. Recursion ends at leaves.
func (t *Tensor) backwardRecursive(grad *tensor.RawTensor) error {
	if err := t.backend.AddInPlace(t.grad.raw, grad); err != nil {
		return errors.WithMessage(err, "backward: accumulate")
	}

	for _, dep := range t.deps {
		inputGrad, err := dep.Fn.Apply(grad, t.backend)
		if err != nil {
			return errors.WithMessagef(err, "backward through %s", dep.Op)
		}
		if err := dep.Input.backwardRecursive(inputGrad); err != nil {
			return err
		}
	}
	return nil
}
