package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtensor/internal/tensor"
)

// backwardTopological visits every tensor reachable from t exactly once,
// outputs before inputs, so each tensor's incoming contributions are summed
// before its own edges are followed.
func (t *Tensor) backwardTopological(seed *tensor.RawTensor) error {
	order := topoSort(t)

	// Pending upstream gradient per tensor, summed over all incoming edges.
	grads := map[*Tensor]*tensor.RawTensor{t: seed}

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		grad, ok := grads[node]
		if !ok {
			continue
		}
		delete(grads, node)

		if err := node.backend.AddInPlace(node.grad.raw, grad); err != nil {
			return errors.WithMessage(err, "backward: accumulate")
		}

		for _, dep := range node.deps {
			inputGrad, err := dep.Fn.Apply(grad, node.backend)
			if err != nil {
				return errors.WithMessagef(err, "backward through %s", dep.Op)
			}
			if err := accumulate(grads, dep.Input, inputGrad, node.backend); err != nil {
				return err
			}
		}
	}
	return nil
}

func accumulate(grads map[*Tensor]*tensor.RawTensor, input *Tensor, grad *tensor.RawTensor, backend tensor.Backend) error {
	existing, ok := grads[input]
	if !ok {
		grads[input] = grad
		return nil
	}
	sum, err := backend.Add(existing, grad)
	if err != nil {
		return errors.WithMessage(err, "backward: accumulate")
	}
	grads[input] = sum
	return nil
}

// topoSort returns the tensors reachable from root in post-order: every
// tensor appears after all of its inputs.
func topoSort(root *Tensor) []*Tensor {
	var order []*Tensor
	visited := make(map[*Tensor]bool)

	var visit func(*Tensor)
	visit = func(t *Tensor) {
		if visited[t] {
			return
		}
		visited[t] = true
		for _, dep := range t.deps {
			visit(dep.Input)
		}
		order = append(order, t)
	}
	visit(root)

	return order
}
