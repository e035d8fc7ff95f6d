package ask

import (
	"math"
	"testing"
)

func TestGetQuantumTimeComponents_AtBase(t *testing.T) {
	ptr := GetQuantumTimeComponents(quantumBaseMS, 0)
	if ptr == nil {
		t.Fatal("GetQuantumTimeComponents returned nil for a valid instant")
	}
	want := [3]float64{0, 0, 0}
	if quantumBuffer != want {
		t.Errorf("at BASE_MS: got %v, want %v", quantumBuffer, want)
	}
}

func TestGetQuantumTimeComponents_OneDayLater(t *testing.T) {
	// Literal scenario: 1_344_643_200_000 + 86_459_178.082. The truncated
	// decimal lands a fraction of a millisecond below the full-precision
	// quantumDayMS constant, so this must resolve the same as a clean
	// day boundary rather than falling back into the prior day.
	ptr := GetQuantumTimeComponents(1_344_643_200_000+86_459_178.082, 0)
	if ptr == nil {
		t.Fatal("GetQuantumTimeComponents returned nil for a valid instant")
	}
	want := [3]float64{1, 0, 0}
	if quantumBuffer != want {
		t.Errorf("one day later: got %v, want %v", quantumBuffer, want)
	}
}

func TestGetQuantumTimeComponents_InvalidEpoch(t *testing.T) {
	cases := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, ms := range cases {
		if ptr := GetQuantumTimeComponents(ms, 0); ptr != nil {
			t.Errorf("GetQuantumTimeComponents(%v, 0) = non-nil, want nil", ms)
		}
	}
}

func TestGetQuantumTimeComponents_StablePointer(t *testing.T) {
	p1 := GetQuantumTimeComponents(quantumBaseMS, 0)
	p2 := GetQuantumTimeComponents(quantumBaseMS+quantumDayMS, 0)
	if p1 != p2 {
		t.Error("GetQuantumTimeComponents returned a different pointer on second call")
	}
}

func TestGetQuantumTimeComponents_DecadeAdvance(t *testing.T) {
	// 10 ordinary days later should land in decade 1, day-in-decade 0.
	ptr := GetQuantumTimeComponents(quantumBaseMS+10*quantumDayMS, 0)
	if ptr == nil {
		t.Fatal("GetQuantumTimeComponents returned nil")
	}
	if quantumBuffer[0] != 0 || quantumBuffer[1] != 1 {
		t.Errorf("10 days later: got day_in_decade=%v decade=%v, want 0,1", quantumBuffer[0], quantumBuffer[1])
	}
}
