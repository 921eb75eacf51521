// Package dataset generates synthetic regression data with known
// ground-truth coefficients.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/descent-ml/descent/internal/tensor"
)

// ErrInvalidArgument is returned when generator arguments are out of range.
var ErrInvalidArgument = errors.New("invalid argument")

// LinearData holds a synthetic design matrix and its noise-free targets.
//
// Features is row-major with shape [Rows, Cols]. The first column is the
// constant 1.0, so Coeffs[0] acts as the intercept of the generating model.
type LinearData struct {
	// Coeffs is the ground-truth coefficient vector, intercept first.
	Coeffs []float64

	// Features is the design matrix, row-major [Rows, Cols].
	Features []float64

	// Targets is the exact product Features · Coeffs, length Rows.
	Targets []float64

	Rows int
	Cols int
}

// Linear samples a design matrix with a constant first column and standard
// normal entries elsewhere, then computes targets as the exact dot product
// with coeffs. No noise is added: the generating model is recoverable to
// machine precision.
//
// The same coeffs, n and seed always produce identical data.
func Linear(coeffs []float64, n int, seed int64) (*LinearData, error) {
	k := len(coeffs)
	if k < 1 {
		return nil, fmt.Errorf("%w: need at least one coefficient", ErrInvalidArgument)
	}
	if n < k {
		return nil, fmt.Errorf("%w: %d rows cannot identify %d coefficients", ErrInvalidArgument, n, k)
	}

	rng := rand.New(rand.NewSource(seed))

	features := make([]float64, n*k)
	targets := make([]float64, n)
	for i := 0; i < n; i++ {
		row := features[i*k : (i+1)*k]
		row[0] = 1.0
		for j := 1; j < k; j++ {
			row[j] = rng.NormFloat64()
		}
		var y float64
		for j := 0; j < k; j++ {
			y += row[j] * coeffs[j]
		}
		targets[i] = y
	}

	cloned := make([]float64, k)
	copy(cloned, coeffs)

	return &LinearData{
		Coeffs:   cloned,
		Features: features,
		Targets:  targets,
		Rows:     n,
		Cols:     k,
	}, nil
}

// Tensors converts d into a [Rows, Cols] feature tensor and a [Rows, 1]
// target tensor on the given backend.
func Tensors[B tensor.Backend](d *LinearData, backend B) (x, y *tensor.Tensor[float64, B], err error) {
	x, err = tensor.FromSlice[float64](d.Features, tensor.Shape{d.Rows, d.Cols}, backend)
	if err != nil {
		return nil, nil, fmt.Errorf("features: %w", err)
	}
	y, err = tensor.FromSlice[float64](d.Targets, tensor.Shape{d.Rows, 1}, backend)
	if err != nil {
		return nil, nil, fmt.Errorf("targets: %w", err)
	}
	return x, y, nil
}
