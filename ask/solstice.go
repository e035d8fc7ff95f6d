package ask

import (
	"math"

	"github.com/kosmos-engine/astrokernel/search"
	"github.com/kosmos-engine/astrokernel/timescale"
)

// solsticeScanDays bounds the forward scan for the next winter solstice.
// A full year easily contains one solstice; 400 days gives headroom.
const solsticeScanDays = 400.0

// solsticeEpsilon is the bisection tolerance, about 1 second of time.
const solsticeEpsilon = 1e-5

// solarLongitudeQuadrant returns which 90-degree quadrant the Sun's
// apparent geocentric ecliptic longitude falls into at jdUTC: 0 for
// [0,90), 1 for [90,180), 2 for [180,270), 3 for [270,360). The winter
// solstice is the transition into quadrant 3.
func solarLongitudeQuadrant(jdUTC float64) int {
	jdTT := timescale.UTCToTT(jdUTC)
	sunLon, _, _ := sunGeocentricEcliptic(jdTT)
	dpsi, _ := nutationAnglesAt(jdTT)
	apparent := normalizeAngle(sunLon + dpsi)
	return int(math.Floor(apparent/(math.Pi/2))) % 4
}

// NextWinterSolsticeFrom returns the next UTC Julian date, strictly after
// jdUTC, at which the Sun's apparent geocentric ecliptic longitude
// crosses 270 degrees (3π/2 radians). Returns NaN if jdUTC is invalid or
// no crossing is found within the bounded forward scan.
func NextWinterSolsticeFrom(jdUTC float64) float64 {
	if !isValidJD(jdUTC) {
		return math.NaN()
	}

	events, err := search.FindDiscrete(jdUTC, jdUTC+solsticeScanDays, 1.0, solarLongitudeQuadrant, solsticeEpsilon)
	if err != nil {
		return math.NaN()
	}
	for _, e := range events {
		if e.NewValue == 3 {
			return e.T
		}
	}
	return math.NaN()
}
