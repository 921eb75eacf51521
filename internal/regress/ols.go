// Package regress computes closed-form least squares baselines.
package regress

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidArgument is returned when inputs cannot form a least squares
// problem.
var ErrInvalidArgument = errors.New("invalid argument")

// Fit is a closed-form ordinary least squares solution.
type Fit struct {
	// Coeffs minimizes the sum of squared residuals.
	Coeffs []float64

	// R2 is the coefficient of determination on the training data.
	R2 float64
}

// OLS solves min ||X·w - y||² by QR factorization. features is row-major
// with shape [rows, cols] and targets has length rows.
//
// Gradient descent on mean squared error converges toward this solution,
// so it serves as the reference the iterative fit is judged against.
func OLS(features, targets []float64, rows, cols int) (*Fit, error) {
	if cols < 1 || rows < cols {
		return nil, fmt.Errorf("%w: %d rows, %d cols", ErrInvalidArgument, rows, cols)
	}
	if len(features) != rows*cols {
		return nil, fmt.Errorf("%w: %d feature values, want %d", ErrInvalidArgument, len(features), rows*cols)
	}
	if len(targets) != rows {
		return nil, fmt.Errorf("%w: %d targets, want %d", ErrInvalidArgument, len(targets), rows)
	}

	x := mat.NewDense(rows, cols, features)
	y := mat.NewDense(rows, 1, targets)

	var qr mat.QR
	qr.Factorize(x)

	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, y); err != nil {
		return nil, fmt.Errorf("solve least squares: %w", err)
	}

	coeffs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		coeffs[j] = sol.At(j, 0)
	}

	estimates := make([]float64, rows)
	for i := 0; i < rows; i++ {
		estimates[i] = floats.Dot(features[i*cols:(i+1)*cols], coeffs)
	}

	return &Fit{
		Coeffs: coeffs,
		R2:     stat.RSquaredFrom(estimates, targets, nil),
	}, nil
}
