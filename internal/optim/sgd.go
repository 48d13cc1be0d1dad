package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/gradtensor/internal/autodiff"
	"github.com/born-ml/gradtensor/internal/tensor"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*autodiff.Tensor
	lr         float64
	momentum   float64
	velocities map[*autodiff.Tensor]*tensor.RawTensor
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

var _ Optimizer = (*SGD)(nil)

// NewSGD creates a new SGD optimizer over params.
// Every parameter must require gradients.
func NewSGD(params []*autodiff.Tensor, config SGDConfig) (*SGD, error) {
	for i, p := range params {
		if !p.RequiresGrad() {
			return nil, errors.Wrapf(autodiff.ErrInvalidOperation, "sgd: parameter %d does not require grad", i)
		}
	}
	if config.Momentum < 0 || config.Momentum >= 1 {
		return nil, errors.Errorf("sgd: momentum %g outside [0, 1)", config.Momentum)
	}

	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autodiff.Tensor]*tensor.RawTensor),
	}, nil
}

// Step performs a single optimization step, writing into each parameter's
// buffer. The graph that produced the gradients must not be reused after.
func (s *SGD) Step() error {
	for i, param := range s.params {
		backend := param.Backend()
		grad := param.Grad().Raw()

		if s.momentum != 0 {
			velocity, exists := s.velocities[param]
			if !exists {
				velocity = tensor.ZerosLike(grad)
				s.velocities[param] = velocity
			}
			// velocity = momentum * velocity + grad
			scaled := backend.Scale(velocity, s.momentum)
			if err := backend.AddInPlace(scaled, grad); err != nil {
				return errors.WithMessagef(err, "sgd: parameter %d", i)
			}
			copy(velocity.Data(), scaled.Data())
			grad = velocity
		}

		// param -= lr * grad
		if err := backend.AddInPlace(param.Raw(), backend.Scale(grad, -s.lr)); err != nil {
			return errors.WithMessagef(err, "sgd: parameter %d", i)
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() error {
	for _, param := range s.params {
		if err := param.ZeroGrad(); err != nil {
			return err
		}
	}
	return nil
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
