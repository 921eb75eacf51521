package cpu

import "github.com/descent-ml/descent/internal/tensor"

// applyInplace applies op element-wise, writing the result into a.
// Requires len(a) == len(b).
func applyInplace[T float32 | float64](a, b []T, op func(x, y T) T) {
	for i := range a {
		a[i] = op(a[i], b[i])
	}
}

// applyBroadcast applies op element-wise with NumPy-style broadcasting.
//
// Each output coordinate is mapped back into a and b using effective
// strides: a stride of 0 where the input dimension is 1 (or missing)
// repeats that input along the broadcast axis.
func applyBroadcast[T float32 | float64](out, a, b []T, aShape, bShape, outShape tensor.Shape, op func(x, y T) T) {
	if aShape.Equal(bShape) {
		for i := range out {
			out[i] = op(a[i], b[i])
		}
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		rem := i
		aIdx, bIdx := 0, 0
		for d, stride := range outStrides {
			coord := rem / stride
			rem %= stride
			aIdx += coord * aStrides[d]
			bIdx += coord * bStrides[d]
		}
		out[i] = op(a[aIdx], b[bIdx])
	}
}

// broadcastStrides computes effective strides for an input shape
// broadcast to outShape, aligned from the right. Broadcast dimensions
// get stride 0.
func broadcastStrides(in, out tensor.Shape) []int {
	inStrides := in.ComputeStrides()
	strides := make([]int, len(out))
	offset := len(out) - len(in)
	for d := range out {
		if d < offset {
			continue // missing leading dimension, stride 0
		}
		if in[d-offset] == 1 && out[d] != 1 {
			continue // broadcast dimension, stride 0
		}
		strides[d] = inStrides[d-offset]
	}
	return strides
}

// transposeData permutes src into dst according to axes.
// dst coordinate i corresponds to src coordinate axes[i].
func transposeData[T float32 | float64](dst, src []T, srcShape, dstShape tensor.Shape, axes []int) {
	srcStrides := srcShape.ComputeStrides()
	dstStrides := dstShape.ComputeStrides()

	n := dstShape.NumElements()
	for i := 0; i < n; i++ {
		rem := i
		srcIdx := 0
		for d, stride := range dstStrides {
			coord := rem / stride
			rem %= stride
			srcIdx += coord * srcStrides[axes[d]]
		}
		dst[i] = src[srcIdx]
	}
}
