package engine

import "testing"

func TestTimerElapsedIsNonNegativeAndAdvances(t *testing.T) {
	timer := NewTimer()
	first := timer.Elapsed()
	if first < 0 {
		t.Fatalf("Elapsed() = %v, want >= 0", first)
	}
	second := timer.Elapsed()
	if second < first {
		t.Fatalf("Elapsed() went backwards: %v then %v", first, second)
	}
}
