// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks.
package nn

import (
	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/tensor"
)

// Module is the common interface for all network modules.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter is a trainable tensor with an accumulated gradient.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a named parameter around t.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float64, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Linear is a fully connected layer computing y = x·Wᵀ + b.
type Linear[B tensor.Backend] = nn.Linear[B]

// LinearConfig configures bias and weight initialization of a Linear layer.
type LinearConfig = nn.LinearConfig

// NewLinear creates a linear layer with bias and Xavier initialization.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	layer := nn.NewLinear(4, 1, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// NewLinearWith creates a linear layer with explicit configuration.
func NewLinearWith[B tensor.Backend](inFeatures, outFeatures int, cfg LinearConfig, backend B) *Linear[B] {
	return nn.NewLinearWith(inFeatures, outFeatures, cfg, backend)
}

// MSELoss is the mean squared error criterion.
type MSELoss[B tensor.Backend] = nn.MSELoss[B]

// NewMSELoss creates an MSE criterion.
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return nn.NewMSELoss[B]()
}
