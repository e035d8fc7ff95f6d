package ask

import (
	"github.com/kosmos-engine/astrokernel/timescale"
)

// StateLen is the fixed length of the state buffer compute_state fills.
const StateLen = 11

// stateBuffer is the process-wide, fixed-address buffer compute_state
// writes into. Its address never changes; only its contents do, once per
// call. Exported entry points return &stateBuffer[0], never a copy.
var stateBuffer [StateLen]float64

// ComputeState fills the state buffer with Sun, Moon, and Earth Cartesian
// positions (AU) plus the solar sub-point (radians), for the given UTC
// Julian date, and returns a pointer to the buffer's first element.
//
// Returns nil (and leaves the buffer unchanged) if jdUTC is not finite or
// falls outside the envelope this build's compiled-in series support.
func ComputeState(jdUTC float64) *float64 {
	if !isValidJD(jdUTC) {
		return nil
	}

	jdTT := timescale.UTCToTT(jdUTC)

	sunLon, sunLat, sunRKm := sunGeocentricEcliptic(jdTT)
	moonLon, moonLat, moonRKm := moonGeocentricEcliptic(jdTT)
	earthLon, earthLat, earthRAU := planetHeliocentricEarth(jdTT)

	dpsi, deps := nutationAnglesAt(jdTT)
	sunLonApparent := normalizeAngle(sunLon + dpsi)
	moonLonApparent := normalizeAngle(moonLon + dpsi)

	sunX, sunY, sunZ := eclipticToCartesian(sunLonApparent, sunLat, auFromKm(sunRKm))
	moonX, moonY, moonZ := eclipticToCartesian(moonLonApparent, moonLat, auFromKm(moonRKm))
	earthX, earthY, earthZ := eclipticToCartesian(earthLon, earthLat, earthRAU)

	eps0 := meanObliquityAt(jdTT)
	eps := eps0 + deps
	sunRA, sunDec := eclipticToEquatorial(sunLonApparent, sunLat, eps)
	theta := apparentSiderealTimeAt(jdUTC)

	subLonEast := wrapSigned(theta - sunRA)
	subLat := sunDec

	stateBuffer[0] = sunX
	stateBuffer[1] = sunY
	stateBuffer[2] = sunZ
	stateBuffer[3] = moonX
	stateBuffer[4] = moonY
	stateBuffer[5] = moonZ
	stateBuffer[6] = earthX
	stateBuffer[7] = earthY
	stateBuffer[8] = earthZ
	stateBuffer[9] = subLonEast
	stateBuffer[10] = subLat

	return &stateBuffer[0]
}

// outLen returns the number of f64 slots compute_state writes.
func outLen() int {
	return StateLen
}
