package animator

import (
	"testing"
	"time"
)

func TestIntervalRing(t *testing.T) {
	r := NewIntervalRing(3)
	if r.Mean() != 0 || r.Values() != nil {
		t.Fatal("Expected empty ring")
	}

	r.Push(10 * time.Millisecond)
	r.Push(20 * time.Millisecond)
	if r.Mean() != 15*time.Millisecond {
		t.Errorf("Expected mean 15ms, got %v", r.Mean())
	}

	r.Push(30 * time.Millisecond)
	r.Push(40 * time.Millisecond)
	got := r.Values()
	want := []time.Duration{20 * time.Millisecond, 30 * time.Millisecond, 40 * time.Millisecond}
	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if r.Mean() != 30*time.Millisecond {
		t.Errorf("Expected mean 30ms, got %v", r.Mean())
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Expected empty ring after reset, got %d", r.Len())
	}
}

func TestIntervalRingZeroCapacity(t *testing.T) {
	r := NewIntervalRing(0)
	r.Push(time.Millisecond)
	if r.Len() != 1 || r.Mean() != time.Millisecond {
		t.Errorf("Expected a one-slot ring, got len %d mean %v", r.Len(), r.Mean())
	}
}
