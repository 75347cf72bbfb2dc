package pointsrc

import (
	"strings"
	"testing"

	"github.com/launix-de/rectrank/engine"
)

func TestLoadJSONL(t *testing.T) {
	in := `{"id":0,"rank":10,"x":1.5,"y":2.5}
{"id":1,"rank":20,"x":-3,"y":4}

{"id":2,"rank":5,"x":0,"y":0}
`
	points, err := LoadJSONL(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadJSONL: %v", err)
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

func TestLoadJSONLRejectsInvalidJSON(t *testing.T) {
	_, err := LoadJSONL(strings.NewReader("not json\n"))
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}
