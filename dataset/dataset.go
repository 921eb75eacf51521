// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset generates synthetic regression data with known
// ground-truth coefficients.
package dataset

import (
	"github.com/descent-ml/descent/internal/dataset"
	"github.com/descent-ml/descent/internal/tensor"
)

// ErrInvalidArgument is returned when generator arguments are out of range.
var ErrInvalidArgument = dataset.ErrInvalidArgument

// LinearData holds a synthetic design matrix and its noise-free targets.
type LinearData = dataset.LinearData

// Linear samples an n-row design matrix with a constant first column and
// standard normal entries elsewhere, with targets computed as the exact
// dot product with coeffs.
//
// Example:
//
//	data, err := dataset.Linear([]float64{3, 5, 2, 7}, 10000, 42)
func Linear(coeffs []float64, n int, seed int64) (*LinearData, error) {
	return dataset.Linear(coeffs, n, seed)
}

// Tensors converts d into a feature tensor and a target tensor on the
// given backend.
func Tensors[B tensor.Backend](d *LinearData, backend B) (x, y *tensor.Tensor[float64, B], err error) {
	return dataset.Tensors(d, backend)
}
