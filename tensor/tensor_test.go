// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"math"
	"testing"

	internalcpu "github.com/descent-ml/descent/internal/backend/cpu"
	"github.com/descent-ml/descent/tensor"
)

// TestBackendInterface verifies that the CPU backend satisfies the public
// Backend alias.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*internalcpu.CPUBackend)(nil)
}

func TestPublicAPIRoundTrip(t *testing.T) {
	backend := internalcpu.New()

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if x.DType() != tensor.Float64 {
		t.Errorf("DType() = %v, want Float64", x.DType())
	}
	if x.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", x.Device())
	}

	// (2, 3) @ (3, 2) via the method API.
	y := x.MatMul(x.T())
	if !y.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("MatMul shape %v, want [2 2]", y.Shape())
	}
	if got := y.At(0, 0); math.Abs(got-14) > 1e-12 {
		t.Errorf("y[0,0] = %v, want 14", got)
	}

	// y = [[14, 32], [32, 77]], total 155.
	if got := y.Sum().Item(); math.Abs(got-155) > 1e-12 {
		t.Errorf("Sum().Item() = %v, want 155", got)
	}
}

func TestBroadcastShapesAlias(t *testing.T) {
	shape, needsBroadcast, err := tensor.BroadcastShapes(tensor.Shape{2, 1}, tensor.Shape{1, 3})
	if err != nil {
		t.Fatalf("BroadcastShapes failed: %v", err)
	}
	if !shape.Equal(tensor.Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", shape)
	}
	if !needsBroadcast {
		t.Error("broadcast should be reported as needed")
	}
}
