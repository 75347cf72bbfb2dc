package engine

import "testing"

func makeTestShard(keys []float32) *shard {
	s := newShard(len(keys))
	for i, k := range keys {
		s.key = append(s.key, k)
		s.other = append(s.other, 0)
		s.origin = append(s.origin, int32(i))
	}
	return s
}

func TestShardLowerUpperBound(t *testing.T) {
	s := makeTestShard([]float32{1, 3, 3, 3, 5, 7})
	cases := []struct {
		v              float32
		wantLo, wantHi int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{3, 1, 4},
		{4, 4, 4},
		{7, 5, 6},
		{8, 6, 6},
	}
	for _, c := range cases {
		if lo := s.lowerBound(c.v, 0, s.Len()); lo != c.wantLo {
			t.Errorf("lowerBound(%v) = %d, want %d", c.v, lo, c.wantLo)
		}
		if hi := s.upperBound(c.v, 0, s.Len()); hi != c.wantHi {
			t.Errorf("upperBound(%v) = %d, want %d", c.v, hi, c.wantHi)
		}
	}
}

func TestShardBoundsEmptySlice(t *testing.T) {
	s := makeTestShard(nil)
	if lo := s.lowerBound(5, 0, 0); lo != 0 {
		t.Fatalf("lowerBound on empty shard = %d, want 0", lo)
	}
	if hi := s.upperBound(5, 0, 0); hi != 0 {
		t.Fatalf("upperBound on empty shard = %d, want 0", hi)
	}
}
