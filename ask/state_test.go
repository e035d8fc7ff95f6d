package ask

import (
	"math"
	"testing"
)

const j2000JD = 2451545.0

func magnitude(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

func TestOutLen_Is11(t *testing.T) {
	if OutLen() != 11 {
		t.Errorf("OutLen() = %d, want 11", OutLen())
	}
}

func TestComputeState_FiniteSlots(t *testing.T) {
	for _, jd := range []float64{j2000JD, j2000JD + 90, j2000JD + 180, j2000JD + 270, j2000JD - 1000} {
		if ptr := ComputeState(jd); ptr == nil {
			t.Fatalf("ComputeState(%f) returned nil", jd)
		}
		for i, v := range stateBuffer {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("jd=%f slot[%d] = %v, not finite", jd, i, v)
			}
		}
		if stateBuffer[9] <= -math.Pi || stateBuffer[9] > math.Pi {
			t.Errorf("jd=%f slot[9] = %f, want in (-pi, pi]", jd, stateBuffer[9])
		}
		if stateBuffer[10] < -math.Pi/2 || stateBuffer[10] > math.Pi/2 {
			t.Errorf("jd=%f slot[10] = %f, want in [-pi/2, pi/2]", jd, stateBuffer[10])
		}
	}
}

func TestComputeState_MagnitudeBounds(t *testing.T) {
	for day := 0.0; day < 365.25*100; day += 37.0 {
		jd := j2000JD + day
		if !isValidJD(jd) {
			continue
		}
		if ptr := ComputeState(jd); ptr == nil {
			t.Fatalf("ComputeState(%f) returned nil", jd)
		}

		sunMag := magnitude(stateBuffer[0], stateBuffer[1], stateBuffer[2])
		moonMag := magnitude(stateBuffer[3], stateBuffer[4], stateBuffer[5])
		earthMag := magnitude(stateBuffer[6], stateBuffer[7], stateBuffer[8])

		if sunMag < 0.98 || sunMag > 1.02 {
			t.Errorf("jd=%f sun magnitude = %f AU, want in [0.98,1.02]", jd, sunMag)
		}
		if earthMag < 0.98 || earthMag > 1.02 {
			t.Errorf("jd=%f earth magnitude = %f AU, want in [0.98,1.02]", jd, earthMag)
		}
		if moonMag < 0.0023 || moonMag > 0.0028 {
			t.Errorf("jd=%f moon magnitude = %f AU, want in [0.0023,0.0028]", jd, moonMag)
		}
		if math.Abs(earthMag-sunMag) > 1e-6 {
			t.Errorf("jd=%f |E|-|S| = %e, want ~0", jd, earthMag-sunMag)
		}
	}
}

func TestComputeState_InvalidJD(t *testing.T) {
	cases := []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0, 3000000}
	for _, jd := range cases {
		if ptr := ComputeState(jd); ptr != nil {
			t.Errorf("ComputeState(%v) = non-nil, want nil", jd)
		}
	}
}

func TestComputeState_Deterministic(t *testing.T) {
	p1 := ComputeState(j2000JD + 42)
	v1 := *p1
	p2 := ComputeState(j2000JD + 42)
	v2 := *p2
	if v1 != v2 {
		t.Errorf("repeated calls not bit-identical: %v vs %v", v1, v2)
	}
}

func TestComputeState_BufferAliasing(t *testing.T) {
	p1 := ComputeState(j2000JD)
	v1 := *p1
	p2 := ComputeState(j2000JD + 10)
	if p1 != p2 {
		t.Error("ComputeState returned a different pointer on second call")
	}
	if *p2 == v1 {
		t.Error("buffer contents unchanged after second call with different JD")
	}
}

func TestComputeState_J2000EarthLongitude(t *testing.T) {
	ComputeState(j2000JD)
	earthMag := magnitude(stateBuffer[6], stateBuffer[7], stateBuffer[8])
	lon := math.Atan2(stateBuffer[7], stateBuffer[6])
	if lon < 0 {
		lon += 2 * math.Pi
	}
	wantLon := 1.7532 // ~100.46 degrees
	if math.Abs(lon-wantLon) > 5e-3 {
		t.Errorf("J2000 earth longitude = %f rad, want ~%f (+-5e-3)", lon, wantLon)
	}
	if math.Abs(earthMag-0.9833) > 1e-3 {
		t.Errorf("J2000 earth magnitude = %f AU, want ~0.9833 (+-1e-3)", earthMag)
	}
}

func TestComputeState_J2000SubPointLatitude(t *testing.T) {
	ComputeState(j2000JD)
	wantLat := -0.4041
	if math.Abs(stateBuffer[10]-wantLat) > 5e-3 {
		t.Errorf("J2000 sub-point latitude = %f rad, want ~%f (+-5e-3)", stateBuffer[10], wantLat)
	}
}

func TestComputeState_EquinoxSubPoint(t *testing.T) {
	ComputeState(2451624.0)
	if math.Abs(stateBuffer[10]) >= 0.02 {
		t.Errorf("equinox sub-point latitude = %f rad, want |lat| < 0.02", stateBuffer[10])
	}
}

func TestComputeState_SunRoundTrip(t *testing.T) {
	jd := j2000JD + 123.0
	jdTT := jd + DeltaT(jd)/86400.0
	wantLon, wantLat, wantRKm := sunGeocentricEcliptic(jdTT)
	dpsi, _ := nutationAnglesAt(jdTT)
	wantLonApparent := normalizeAngle(wantLon + dpsi)

	ComputeState(jd)
	gotR := magnitude(stateBuffer[0], stateBuffer[1], stateBuffer[2])
	gotLon := math.Atan2(stateBuffer[1], stateBuffer[0])
	if gotLon < 0 {
		gotLon += 2 * math.Pi
	}
	gotLat := math.Asin(stateBuffer[2] / gotR)

	if math.Abs(gotLon-wantLonApparent) > 1e-9 {
		t.Errorf("round-trip sun longitude: got %f want %f", gotLon, wantLonApparent)
	}
	if math.Abs(gotLat-wantLat) > 1e-9 {
		t.Errorf("round-trip sun latitude: got %f want %f", gotLat, wantLat)
	}
	if math.Abs(gotR-auFromKm(wantRKm)) > 1e-9 {
		t.Errorf("round-trip sun distance: got %f want %f", gotR, auFromKm(wantRKm))
	}
}
