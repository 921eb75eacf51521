package autodiff_test

import (
	"math"
	"testing"

	"github.com/descent-ml/descent/internal/autodiff"
	"github.com/descent-ml/descent/internal/tensor"
)

// numericalGradient estimates df/dx at x with central differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// TestGradientCheckSquaredResidual compares the taped gradient of
// mean((x·w - y)²) with respect to each weight against a finite
// difference estimate.
func TestGradientCheckSquaredResidual(t *testing.T) {
	features := []float64{
		1, 0.5,
		1, -1.2,
		1, 2.0,
	}
	targets := []float64{1.0, -2.0, 4.0}
	weights := []float64{0.3, -0.7}

	// Reference loss on plain floats.
	loss := func(w []float64) float64 {
		var total float64
		for i := 0; i < 3; i++ {
			pred := w[0]*features[i*2] + w[1]*features[i*2+1]
			d := pred - targets[i]
			total += d * d
		}
		return total / 3
	}

	// Taped gradient.
	backend := newBackend()
	backend.Tape().StartRecording()

	x := fromSlice(t, backend, features, tensor.Shape{3, 2})
	y := fromSlice(t, backend, targets, tensor.Shape{3, 1})
	w := fromSlice(t, backend, weights, tensor.Shape{2, 1})

	diff := x.MatMul(w).Sub(y)
	l := diff.Mul(diff).Mean()

	grads := autodiff.Backward(l, backend)
	taped := grads[w.Raw()].AsFloat64()

	for j := range weights {
		f := func(v float64) float64 {
			perturbed := []float64{weights[0], weights[1]}
			perturbed[j] = v
			return loss(perturbed)
		}
		numerical := numericalGradient(f, weights[j], 1e-6)

		if math.Abs(taped[j]-numerical) > 1e-6 {
			t.Errorf("dL/dw[%d]: taped %v, numerical %v", j, taped[j], numerical)
		}
	}
}
