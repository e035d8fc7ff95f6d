// Package ask implements the Astronomical State Kernel: a branch-light,
// allocation-free engine that turns a Julian Day into a fixed-size bundle
// of Sun/Moon/Earth positions and a solar sub-point, consumed once per
// render frame by a host. It composes the Keplerian Earth/Sun ellipse,
// the ELP-2000/82-class lunar series, IAU 2000A nutation, and apparent
// sidereal time (all in sibling packages) behind a single hot-path entry
// point, plus two off-frame helpers (a quantum-calendar decomposer and a
// winter-solstice solver) that share the same numerical core.
package ask

import (
	"math"

	"github.com/kosmos-engine/astrokernel/timescale"
	"github.com/kosmos-engine/astrokernel/units"
)

// jdEnvelopeMin and jdEnvelopeMax bound the Julian dates this build
// considers valid (years 1900-2100), a span inside the 1800-2200 range of
// the timescale package's delta-T table.
const (
	jdEnvelopeMin = 2415020.5
	jdEnvelopeMax = 2488070.5

	twoPi = 2 * math.Pi
)

// normalizeAngle reduces a radian angle to [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// wrapSigned reduces a radian angle to (−π, π].
func wrapSigned(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a <= -math.Pi {
		a += twoPi
	} else if a > math.Pi {
		a -= twoPi
	}
	return a
}

// auFromKm converts a distance in kilometers to astronomical units, using
// the IAU 2012 nominal AU.
func auFromKm(km float64) float64 {
	return km / units.AUToKm
}

// isValidJD reports whether jd is finite and within the 1900-2100
// envelope [jdEnvelopeMin, jdEnvelopeMax].
func isValidJD(jd float64) bool {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return false
	}
	return jd >= jdEnvelopeMin && jd <= jdEnvelopeMax
}

// DeltaT returns TT−UTC in seconds at the given UTC Julian date: the
// leap-second count plus the fixed 32.184s TAI-TT offset. Callers convert
// JD_UTC to JD_TT by adding DeltaT(jdUTC)/86400.
func DeltaT(jdUTC float64) float64 {
	return timescale.LeapSecondOffset(jdUTC) + 32.184
}
