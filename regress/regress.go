// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package regress computes closed-form least squares baselines.
package regress

import (
	"github.com/descent-ml/descent/internal/regress"
)

// ErrInvalidArgument is returned when inputs cannot form a least squares
// problem.
var ErrInvalidArgument = regress.ErrInvalidArgument

// Fit is a closed-form ordinary least squares solution.
type Fit = regress.Fit

// OLS solves min ||X·w - y||² by QR factorization. features is row-major
// with shape [rows, cols] and targets has length rows.
func OLS(features, targets []float64, rows, cols int) (*Fit, error) {
	return regress.OLS(features, targets, rows, cols)
}
