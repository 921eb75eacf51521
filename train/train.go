// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train drives full-batch gradient descent over a linear model.
//
// A Trainer owns a single linear layer, an MSE criterion and an SGD
// optimizer, and records the loss after every update step:
//
//	backend := autodiff.New(cpu.New())
//	trainer, err := train.NewTrainer(train.Config{
//	    FeatureDim:   4,
//	    LearningRate: 0.1,
//	    Iterations:   5000,
//	    Seed:         42,
//	}, backend)
//	result, err := trainer.FitData(data)
package train

import (
	"github.com/descent-ml/descent/internal/autodiff"
	"github.com/descent-ml/descent/internal/train"
)

// ErrInvalidConfig is returned when a training configuration is rejected.
var ErrInvalidConfig = train.ErrInvalidConfig

// Loss selects the training objective.
type Loss = train.Loss

// SquaredError is mean squared error, the only supported objective.
const SquaredError Loss = train.SquaredError

// Config describes one training run.
type Config = train.Config

// Result holds the loss history and learned weights of a run.
type Result = train.Result

// Trainer runs gradient descent for a single linear layer.
type Trainer[B autodiff.TapeBackend] = train.Trainer[B]

// NewTrainer validates cfg and builds the model and optimizer.
func NewTrainer[B autodiff.TapeBackend](cfg Config, backend B) (*Trainer[B], error) {
	return train.NewTrainer(cfg, backend)
}
