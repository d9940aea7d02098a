package random

import "testing"

// TestNewSeedSucceeds ensures seed generation never errors under normal
// conditions.
func TestNewSeedSucceeds(t *testing.T) {
	if _, err := NewSeed(); err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
}

// TestNewSeedVaries draws several seeds and expects at least two distinct
// values. Collisions across a handful of 64-bit draws would indicate a
// broken randomness source.
func TestNewSeedVaries(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 8; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed returned error: %v", err)
		}
		seen[seed] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected distinct seeds, got %d unique value(s)", len(seen))
	}
}
