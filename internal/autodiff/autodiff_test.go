package autodiff_test

import (
	"math"
	"testing"

	"github.com/descent-ml/descent/internal/autodiff"
	"github.com/descent-ml/descent/internal/backend/cpu"
	"github.com/descent-ml/descent/internal/tensor"
)

type backendT = *autodiff.Backend[*cpu.CPUBackend]

func newBackend() backendT {
	return autodiff.New(cpu.New())
}

func fromSlice(t *testing.T, backend backendT, data []float64, shape tensor.Shape) *tensor.Tensor[float64, backendT] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, backend)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return x
}

func TestTapeRecording(t *testing.T) {
	backend := newBackend()
	tape := backend.Tape()

	x := fromSlice(t, backend, []float64{1, 2}, tensor.Shape{2})
	y := fromSlice(t, backend, []float64{3, 4}, tensor.Shape{2})

	// Not recording yet.
	x.Add(y)
	if tape.NumOps() != 0 {
		t.Fatalf("ops recorded before StartRecording: %d", tape.NumOps())
	}

	tape.StartRecording()
	x.Add(y)
	x.Mul(y)
	if tape.NumOps() != 2 {
		t.Fatalf("NumOps() = %d, want 2", tape.NumOps())
	}

	tape.Clear()
	if tape.NumOps() != 0 {
		t.Fatalf("NumOps() after Clear = %d, want 0", tape.NumOps())
	}
	if !tape.IsRecording() {
		t.Error("Clear should preserve the recording state")
	}
}

func TestBackwardSquare(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	// y = x * x, dy/dx = 2x
	x := fromSlice(t, backend, []float64{3}, tensor.Shape{1})
	y := x.Mul(x)

	grads := autodiff.Backward(y, backend)

	grad := grads[x.Raw()]
	if grad == nil {
		t.Fatal("no gradient for x")
	}
	if got := grad.AsFloat64()[0]; math.Abs(got-6) > 1e-12 {
		t.Errorf("dy/dx = %v, want 6", got)
	}
}

func TestBackwardPreservesInputs(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	// The in-place fast path must not clobber x while recording.
	x := fromSlice(t, backend, []float64{1, 2}, tensor.Shape{2})
	y := fromSlice(t, backend, []float64{10, 20}, tensor.Shape{2})
	x.Add(y)

	if got := x.Data(); got[0] != 1 || got[1] != 2 {
		t.Errorf("input mutated during recorded Add: %v", got)
	}
}

func TestBackwardAddAccumulates(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	// y = x*x + x, dy/dx = 2x + 1
	x := fromSlice(t, backend, []float64{4}, tensor.Shape{1})
	y := x.Mul(x).Add(x)

	grads := autodiff.Backward(y, backend)
	if got := grads[x.Raw()].AsFloat64()[0]; math.Abs(got-9) > 1e-12 {
		t.Errorf("dy/dx = %v, want 9", got)
	}
}

func TestBackwardMatMul(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	// y = sum(A @ B), dA = ones @ Bᵀ, dB = Aᵀ @ ones
	a := fromSlice(t, backend, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice(t, backend, []float64{5, 6, 7, 8}, tensor.Shape{2, 2})
	y := a.MatMul(b).Sum()

	grads := autodiff.Backward(y, backend)

	wantA := []float64{11, 15, 11, 15} // rows of Bᵀ summed
	gotA := grads[a.Raw()].AsFloat64()
	for i := range wantA {
		if math.Abs(gotA[i]-wantA[i]) > 1e-12 {
			t.Fatalf("dA[%d] = %v, want %v", i, gotA[i], wantA[i])
		}
	}

	wantB := []float64{4, 4, 6, 6} // columns of A summed
	gotB := grads[b.Raw()].AsFloat64()
	for i := range wantB {
		if math.Abs(gotB[i]-wantB[i]) > 1e-12 {
			t.Fatalf("dB[%d] = %v, want %v", i, gotB[i], wantB[i])
		}
	}
}

func TestBackwardMean(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	// y = mean(x), dy/dx_i = 1/n
	x := fromSlice(t, backend, []float64{1, 2, 3, 4}, tensor.Shape{4})
	y := x.Mean()

	grads := autodiff.Backward(y, backend)
	for i, g := range grads[x.Raw()].AsFloat64() {
		if math.Abs(g-0.25) > 1e-12 {
			t.Fatalf("grad[%d] = %v, want 0.25", i, g)
		}
	}
}

func TestBackwardBroadcastReducesGradient(t *testing.T) {
	backend := newBackend()
	backend.Tape().StartRecording()

	// x: [2, 3], row: [1, 3]. Row gradient sums over the broadcast dim.
	x := fromSlice(t, backend, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	row := fromSlice(t, backend, []float64{10, 20, 30}, tensor.Shape{1, 3})
	y := x.Add(row).Sum()

	grads := autodiff.Backward(y, backend)

	gradRow := grads[row.Raw()]
	if !gradRow.Shape().Equal(tensor.Shape{1, 3}) {
		t.Fatalf("row grad shape %v, want [1 3]", gradRow.Shape())
	}
	for i, g := range gradRow.AsFloat64() {
		if math.Abs(g-2) > 1e-12 {
			t.Fatalf("row grad[%d] = %v, want 2", i, g)
		}
	}
}

func TestBackwardWithoutOpsPanics(t *testing.T) {
	backend := newBackend()
	x := fromSlice(t, backend, []float64{1}, tensor.Shape{1})

	defer func() {
		if recover() == nil {
			t.Error("Backward with an empty tape should panic")
		}
	}()
	autodiff.Backward(x, backend)
}
