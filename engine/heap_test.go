package engine

import (
	"math/rand"
	"testing"
)

func TestTopKHeapKeepsLowest(t *testing.T) {
	h := newTopKHeap(3)
	for _, v := range []int32{10, 5, 20, 1, 15, 2, 30} {
		h.push(v)
	}
	got := h.ascending()
	want := []int32{1, 2, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTopKHeapFullBehavior(t *testing.T) {
	h := newTopKHeap(2)
	if h.full() {
		t.Fatalf("empty heap must not be full")
	}
	h.push(5)
	if h.full() {
		t.Fatalf("heap with one of two slots filled must not be full")
	}
	h.push(3)
	if !h.full() {
		t.Fatalf("heap with two of two slots filled must be full")
	}
}

func TestTopKHeapZeroCapacity(t *testing.T) {
	h := newTopKHeap(0)
	h.push(1)
	if len(h.ascending()) != 0 {
		t.Fatalf("zero-capacity heap must never commit anything")
	}
}

func TestTopKHeapMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(200)
		k := 1 + rng.Intn(50)
		values := make([]int32, n)
		for i := range values {
			values[i] = rng.Int31n(10000)
		}

		h := newTopKHeap(k)
		for _, v := range values {
			h.push(v)
		}
		got := h.ascending()

		sorted := append([]int32(nil), values...)
		for i := 0; i < len(sorted); i++ {
			for j := i + 1; j < len(sorted); j++ {
				if sorted[j] < sorted[i] {
					sorted[i], sorted[j] = sorted[j], sorted[i]
				}
			}
		}
		limit := k
		if limit > len(sorted) {
			limit = len(sorted)
		}
		want := sorted[:limit]

		if len(got) != len(want) {
			t.Fatalf("trial %d: got %d elements, want %d", trial, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("trial %d: got %v, want %v", trial, got, want)
			}
		}
	}
}
