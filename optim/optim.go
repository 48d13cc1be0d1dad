// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers that update autodiff tensors from their
// accumulated gradients.
package optim

import (
	"github.com/born-ml/gradtensor/autodiff"
	"github.com/born-ml/gradtensor/internal/optim"
)

// Optimizer is the base interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD is stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for SGD.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over params.
//
// Example:
//
//	sgd, err := optim.NewSGD([]*autodiff.Tensor{w, b}, optim.SGDConfig{LR: 0.01})
func NewSGD(params []*autodiff.Tensor, config SGDConfig) (*SGD, error) {
	return optim.NewSGD(params, config)
}
