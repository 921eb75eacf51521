package ops

import (
	"fmt"

	"github.com/descent-ml/descent/internal/tensor"
)

// reduceBroadcast reduces a gradient tensor to match the target shape.
// Needed when broadcasting was used in the forward pass:
//
//	Forward:  a[1,4] + b[3,4] -> c[3,4]  (a broadcast along dim 0)
//	Backward: grad_c[3,4] -> grad_a[1,4] (sum along dim 0)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	gradShape := grad.Shape()

	// Clone when shapes already match so in-place backend ops cannot
	// corrupt a gradient shared by another operation.
	if gradShape.Equal(targetShape) {
		return grad.Clone()
	}

	// Sum away leading dimensions the target lacks.
	result := grad
	for len(result.Shape()) > len(targetShape) {
		result = sumAlongDimension(result, 0)
		result = backend.Reshape(result, result.Shape()[1:])
	}

	// Sum along dimensions where the target is 1.
	for d := 0; d < len(targetShape); d++ {
		if targetShape[d] == 1 && result.Shape()[d] > 1 {
			result = sumAlongDimension(result, d)
		}
	}

	if !result.Shape().Equal(targetShape) {
		result = backend.Reshape(result, targetShape)
	}
	return result
}

// sumAlongDimension sums a tensor along one dimension, keeping it with
// size 1.
func sumAlongDimension(t *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := t.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("sumAlongDimension: invalid dimension %d for shape %v", dim, shape))
	}

	outShape := shape.Clone()
	outShape[dim] = 1

	result, err := tensor.NewRaw(outShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("sumAlongDimension: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		sumDimKernel(t.AsFloat32(), result.AsFloat32(), shape, dim)
	case tensor.Float64:
		sumDimKernel(t.AsFloat64(), result.AsFloat64(), shape, dim)
	default:
		panic(fmt.Sprintf("sumAlongDimension: unsupported dtype %s", t.DType()))
	}

	return result
}

// sumDimKernel accumulates data into result with shape[dim] collapsed
// to 1 (row-major layout).
func sumDimKernel[T float32 | float64](data, result []T, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()

	outShape := shape.Clone()
	outShape[dim] = 1
	outStrides := outShape.ComputeStrides()

	for i := range data {
		rem := i
		outIdx := 0
		for d, stride := range strides {
			coord := rem / stride
			rem %= stride
			if d == dim {
				coord = 0
			}
			outIdx += coord * outStrides[d]
		}
		result[outIdx] += data[i]
	}
}

// negate returns -grad without touching the input.
func negate(grad *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	switch grad.DType() {
	case tensor.Float32:
		return backend.MulScalar(grad, float32(-1))
	case tensor.Float64:
		return backend.MulScalar(grad, float64(-1))
	default:
		panic(fmt.Sprintf("negate: unsupported dtype %s", grad.DType()))
	}
}

// fillConstant creates a tensor of the given shape filled with v,
// matching the reference tensor's dtype and device.
func fillConstant(shape tensor.Shape, like *tensor.RawTensor, v float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, like.DType(), like.Device())
	if err != nil {
		panic(fmt.Sprintf("fillConstant: %v", err))
	}

	switch like.DType() {
	case tensor.Float32:
		data := result.AsFloat32()
		for i := range data {
			data[i] = float32(v)
		}
	case tensor.Float64:
		data := result.AsFloat64()
		for i := range data {
			data[i] = v
		}
	}
	return result
}
