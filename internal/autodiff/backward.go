package autodiff

import (
	"fmt"

	"github.com/descent-ml/descent/internal/tensor"
)

// TapeBackend is the constraint for backends that can run a backward
// pass. Backend[B] satisfies it; code that only needs forward
// evaluation should keep depending on tensor.Backend instead.
type TapeBackend interface {
	tensor.Backend
	Tape() *Tape
}

// Backward computes gradients of t with respect to every tensor on the
// backend's tape, seeding the output gradient with ones.
//
// Returns a map from RawTensor to its gradient.
func Backward[T tensor.DType, B TapeBackend](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	tape := backend.Tape()
	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	outputGrad, err := tensor.NewRaw(t.Shape(), t.DType(), backend.Device())
	if err != nil {
		panic(fmt.Sprintf("backward: failed to create output gradient: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		data := outputGrad.AsFloat32()
		for i := range data {
			data[i] = 1
		}
	case tensor.Float64:
		data := outputGrad.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	default:
		panic(fmt.Sprintf("backward: unsupported dtype %s", t.DType()))
	}

	return tape.Backward(outputGrad, backend)
}
