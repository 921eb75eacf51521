package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForSequentialFallback(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	For(5, func(i int) { order = append(order, i) }, cfg)

	if len(order) != 5 {
		t.Fatalf("got %d iterations, want 5", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("sequential fallback out of order: %v", order)
		}
	}
}

func TestForBelowChunkThreshold(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 100}

	// n < MinChunkSize runs sequentially: appends are safe.
	var order []int
	For(10, func(i int) { order = append(order, i) }, cfg)
	if len(order) != 10 {
		t.Fatalf("got %d iterations, want 10", len(order))
	}
}

func TestForParallelCoversAllIndices(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	n := 1000
	hits := make([]atomic.Int32, n)
	For(n, func(i int) { hits[i].Add(1) }, cfg)

	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("index %d executed %d times, want 1", i, got)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.NumWorkers < 1 {
		t.Errorf("NumWorkers = %d, want >= 1", cfg.NumWorkers)
	}
	if cfg.MinChunkSize < 1 {
		t.Errorf("MinChunkSize = %d, want >= 1", cfg.MinChunkSize)
	}
}
