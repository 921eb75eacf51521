package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/descent-ml/descent/internal/autodiff"
	"github.com/descent-ml/descent/internal/backend/cpu"
	"github.com/descent-ml/descent/internal/tensor"
)

type testBackend = *autodiff.Backend[*cpu.CPUBackend]

func newTestBackend() testBackend {
	return autodiff.New(cpu.New())
}

func TestLinearForward(t *testing.T) {
	backend := newTestBackend()
	layer := NewLinear(2, 1, backend)

	// Fix the weights: y = 2*x1 + 3*x2 + 1
	copy(layer.Weight().Tensor().Data(), []float64{2, 3})
	copy(layer.Bias().Tensor().Data(), []float64{1})

	input, err := tensor.FromSlice([]float64{1, 1, 2, -1}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	output := layer.Forward(input)
	require.True(t, output.Shape().Equal(tensor.Shape{2, 1}))

	// Row 1: 2*1 + 3*1 + 1 = 6. Row 2: 2*2 + 3*(-1) + 1 = 2.
	assert.InDelta(t, 6.0, output.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, output.At(1, 0), 1e-12)
}

func TestLinearNoBias(t *testing.T) {
	backend := newTestBackend()
	layer := NewLinearWith(3, 1, LinearConfig{}, backend)

	require.Nil(t, layer.Bias())
	require.Len(t, layer.Parameters(), 1)

	copy(layer.Weight().Tensor().Data(), []float64{1, 2, 3})

	input, err := tensor.FromSlice([]float64{1, 1, 1}, tensor.Shape{1, 3}, backend)
	require.NoError(t, err)

	output := layer.Forward(input)
	assert.InDelta(t, 6.0, output.At(0, 0), 1e-12)
}

func TestLinearForwardShapePanics(t *testing.T) {
	backend := newTestBackend()
	layer := NewLinear(4, 1, backend)

	input, err := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{1, 3}, backend)
	require.NoError(t, err)

	assert.Panics(t, func() { layer.Forward(input) })
}

func TestLinearDeterministicInit(t *testing.T) {
	backend := newTestBackend()

	a := NewLinearWith(4, 1, LinearConfig{Rand: rand.New(rand.NewSource(42))}, backend)
	b := NewLinearWith(4, 1, LinearConfig{Rand: rand.New(rand.NewSource(42))}, backend)

	assert.Equal(t, a.Weight().Tensor().Data(), b.Weight().Tensor().Data())
}

func TestXavierRange(t *testing.T) {
	backend := newTestBackend()

	// Glorot uniform: |w| <= sqrt(6 / (fanIn + fanOut))
	fanIn, fanOut := 8, 4
	limit := math.Sqrt(6.0 / float64(fanIn+fanOut))

	w := Xavier(fanIn, fanOut, tensor.Shape{fanOut, fanIn}, rand.New(rand.NewSource(1)), backend)
	for i, v := range w.Data() {
		if math.Abs(v) > limit {
			t.Fatalf("weight %d = %v exceeds Xavier limit %v", i, v, limit)
		}
	}
}

func TestLinearGradients(t *testing.T) {
	backend := newTestBackend()
	layer := NewLinearWith(2, 1, LinearConfig{}, backend)
	copy(layer.Weight().Tensor().Data(), []float64{1, 1})

	backend.Tape().StartRecording()

	input, err := tensor.FromSlice([]float64{2, 3}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)

	output := layer.Forward(input)
	grads := autodiff.Backward(output, backend)

	// d(x·wᵀ)/dw = x
	grad := grads[layer.Weight().Tensor().Raw()]
	require.NotNil(t, grad, "weight should receive a gradient")
	assert.InDelta(t, 2.0, grad.AsFloat64()[0], 1e-12)
	assert.InDelta(t, 3.0, grad.AsFloat64()[1], 1e-12)
}
