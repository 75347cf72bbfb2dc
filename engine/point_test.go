package engine

import (
	"math"
	"testing"
)

func TestRectContainsInclusiveEdges(t *testing.T) {
	r := Rect{Lx: 0, Ly: 0, Hx: 2, Hy: 2}
	cases := []struct {
		x, y float32
		want bool
	}{
		{0, 0, true},
		{2, 2, true},
		{0, 2, true},
		{2, 0, true},
		{1, 1, true},
		{3, 3, false},
		{-0.1, 0, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%v,%v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRectInvertedIsEmpty(t *testing.T) {
	r := Rect{Lx: 5, Ly: 5, Hx: -5, Hy: -5}
	if r.Contains(0, 0) {
		t.Fatalf("inverted rect should contain nothing, matched (0,0)")
	}
}

func TestRectNaNExcludesPoint(t *testing.T) {
	nan := float32(math.NaN())
	r := Rect{Lx: 0, Ly: 0, Hx: 10, Hy: 10}
	if r.Contains(nan, 5) {
		t.Fatalf("NaN x should not match any bound")
	}
	r2 := Rect{Lx: nan, Ly: 0, Hx: 10, Hy: 10}
	if r2.Contains(5, 5) {
		t.Fatalf("NaN rectangle bound should exclude every point")
	}
}
