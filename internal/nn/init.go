package nn

import (
	"math"
	"math/rand"

	"github.com/descent-ml/descent/internal/tensor"
)

// Xavier initializes a weight tensor with the Glorot uniform
// distribution U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))),
// which keeps activation variance stable across layers.
//
// rng may be nil, in which case the shared math/rand source is used;
// pass a seeded *rand.Rand for reproducible initialization.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand, backend B) *tensor.Tensor[float64, B] {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.Zeros[float64](shape, backend)
	data := t.Data()
	for i := range data {
		//nolint:gosec // weight initialization is not security-critical
		data[i] = (uniform(rng)*2.0 - 1.0) * bound
	}
	return t
}

// Zeros creates a zero-filled tensor, the conventional bias init.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Zeros[float64](shape, backend)
}

// Ones creates a tensor filled with ones.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float64, B] {
	return tensor.Ones[float64](shape, backend)
}

func uniform(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return rand.Float64()
}
