package pointsrc

import (
	"strings"
	"testing"

	"github.com/launix-de/rectrank/engine"
)

func TestLoadCSV(t *testing.T) {
	in := "0,10,1.5,2.5\n1,20,-3,4\n\n2,5,0,0\n"
	points, err := LoadCSV(strings.NewReader(in), ",")
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	want := []engine.Point{
		{ID: 0, Rank: 10, X: 1.5, Y: 2.5},
		{ID: 1, Rank: 20, X: -3, Y: 4},
		{ID: 2, Rank: 5, X: 0, Y: 0},
	}
	if len(points) != len(want) {
		t.Fatalf("got %d points, want %d", len(points), len(want))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("point %d: got %+v, want %+v", i, points[i], want[i])
		}
	}
}

func TestLoadCSVRejectsMalformedLine(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("0,10,1.5\n"), ",")
	if err == nil {
		t.Fatal("expected error for short line, got nil")
	}
}

func TestLoadCSVCustomDelimiter(t *testing.T) {
	points, err := LoadCSV(strings.NewReader("0;10;1;2\n"), ";")
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(points) != 1 || points[0].Rank != 10 {
		t.Fatalf("got %+v", points)
	}
}
