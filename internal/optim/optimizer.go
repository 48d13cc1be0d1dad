// Package optim implements optimization algorithms that consume the
// gradients accumulated by the autodiff package.
//
// Example usage:
//
//	sgd, _ := optim.NewSGD([]*autodiff.Tensor{w, b}, optim.SGDConfig{LR: 0.1})
//
//	for step := range steps {
//	    loss := forward(x, w, b)
//	    _ = loss.Backward(nil)
//	    _ = sgd.Step()
//	    _ = sgd.ZeroGrad()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step updates every parameter in place from its accumulated gradient.
	Step() error

	// ZeroGrad resets every parameter's gradient. Call it between backward
	// passes, since gradients accumulate.
	ZeroGrad() error

	// LR returns the current learning rate.
	LR() float64
}
