package coord

import (
	"math"
	"testing"
)

func TestSeparationAngle_ZeroVectors(t *testing.T) {
	got := SeparationAngle([3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	if got != 0 {
		t.Errorf("zero vector separation = %f, want 0", got)
	}
}

func TestSeparationAngle_Parallel(t *testing.T) {
	got := SeparationAngle([3]float64{1, 0, 0}, [3]float64{2, 0, 0})
	if math.Abs(got) > 1e-9 {
		t.Errorf("parallel vectors separation = %f, want 0", got)
	}
}

func TestSeparationAngle_Perpendicular(t *testing.T) {
	got := SeparationAngle([3]float64{1, 0, 0}, [3]float64{0, 1, 0})
	if math.Abs(got-90.0) > 1e-9 {
		t.Errorf("perpendicular vectors separation = %f, want 90", got)
	}
}

func TestSeparationAngle_Antiparallel(t *testing.T) {
	got := SeparationAngle([3]float64{1, 0, 0}, [3]float64{-1, 0, 0})
	if math.Abs(got-180.0) > 1e-9 {
		t.Errorf("antiparallel vectors separation = %f, want 180", got)
	}
}

func TestPhaseAngle_FullyLit(t *testing.T) {
	obsToTarget := [3]float64{1, 0, 0}
	sunToTarget := [3]float64{1, 0, 0}
	got := PhaseAngle(obsToTarget, sunToTarget)
	if math.Abs(got) > 1e-9 {
		t.Errorf("fully lit phase angle = %f, want 0", got)
	}
}

func TestPhaseAngle_HalfLit(t *testing.T) {
	obsToTarget := [3]float64{1, 0, 0}
	sunToTarget := [3]float64{0, 1, 0}
	got := PhaseAngle(obsToTarget, sunToTarget)
	if math.Abs(got-90.0) > 1e-9 {
		t.Errorf("half lit phase angle = %f, want 90", got)
	}
}

func TestFractionIlluminated_Values(t *testing.T) {
	cases := []struct {
		phaseDeg float64
		want     float64
	}{
		{0, 1.0},
		{90, 0.5},
		{180, 0.0},
	}
	for _, c := range cases {
		got := FractionIlluminated(c.phaseDeg)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("FractionIlluminated(%f) = %f, want %f", c.phaseDeg, got, c.want)
		}
	}
}

func TestPositionAngle_NorthSouth(t *testing.T) {
	got := PositionAngle(0, 0, 0, 10)
	if math.Abs(got) > 1e-6 {
		t.Errorf("due-north position angle = %f, want 0", got)
	}
}

func TestElongation_KnownValues(t *testing.T) {
	cases := []struct {
		target, ref, want float64
	}{
		{100, 100, 0},
		{190, 100, 90},
		{-10, 100, 250},
	}
	for _, c := range cases {
		got := Elongation(c.target, c.ref)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Elongation(%f,%f) = %f, want %f", c.target, c.ref, got, c.want)
		}
	}
}
