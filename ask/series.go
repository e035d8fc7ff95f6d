package ask

import (
	"math"

	"github.com/kosmos-engine/astrokernel/coord"
	"github.com/kosmos-engine/astrokernel/kepler"
	"github.com/kosmos-engine/astrokernel/moonposition"
	"github.com/kosmos-engine/astrokernel/timescale"
	"github.com/kosmos-engine/astrokernel/units"
)

// earthOrbit holds the J2000 mean heliocentric ecliptic elements of
// Earth's orbit (JPL "Keplerian elements for approximate positions",
// J2000 epoch), propagated via Kepler's equation. It stands in for the
// full VSOP87 planetary series this build does not carry (see
// DESIGN.md); the resulting Earth/Sun longitude is accurate to several
// arcminutes near J2000, not VSOP87's sub-arcsecond precision.
var earthOrbit = &kepler.Orbit{
	SemiMajorAxisAU: 1.00000011,
	Eccentricity:    0.01671022,
	InclinationDeg:  0.00005,
	LongAscNodeDeg:  -11.26064,
	ArgPeriapsisDeg: 114.20783, // longitude of perihelion (102.94719) minus Ω
	MeanAnomalyDeg:  357.51716,
	EpochJD:         2451545.0, // J2000.0
}

// planetHeliocentricEarth returns Earth's heliocentric ecliptic longitude
// and latitude (radians) and distance (AU) at the given TT Julian date.
func planetHeliocentricEarth(jdTT float64) (lon, lat, rAU float64) {
	return earthOrbit.EclipticAU(jdTT)
}

// sunGeocentricEcliptic returns the Sun's geocentric ecliptic longitude
// and latitude (radians) and distance (km) at the given TT Julian date.
// Derived from Earth's heliocentric position as its antipode: the
// classical low-precision solar-theory identity (sun = earth + 180°,
// latitude negated).
func sunGeocentricEcliptic(jdTT float64) (lon, lat, rKm float64) {
	earthLon, earthLat, earthR := planetHeliocentricEarth(jdTT)
	lon = normalizeAngle(earthLon + math.Pi)
	lat = -earthLat
	rKm = earthR * units.AUToKm
	return
}

// moonGeocentricEcliptic returns the Moon's geocentric ecliptic longitude
// and latitude (radians) and distance (km) at the given TT Julian date
// (treated as JDE), via the ELP-2000/82-class periodic series.
func moonGeocentricEcliptic(jdTT float64) (lon, lat, rKm float64) {
	return moonposition.Position(jdTT)
}

// nutationAnglesAt returns nutation in longitude and obliquity (radians)
// at the given TT Julian date.
func nutationAnglesAt(jdTT float64) (dpsi, deps float64) {
	return coord.Nutation(jdTT)
}

// meanObliquityAt returns the mean obliquity of the ecliptic (radians) at
// the given TT Julian date.
func meanObliquityAt(jdTT float64) float64 {
	return coord.MeanObliquity(jdTT)
}

// apparentSiderealTimeAt returns apparent sidereal time (radians, wrapped
// to [0, 2π)) at the given UTC Julian date. UT1 is derived from UTC via
// the UTC->TT->UT1 chain in the timescale package.
func apparentSiderealTimeAt(jdUTC float64) float64 {
	jdTT := timescale.UTCToTT(jdUTC)
	jdUT1 := timescale.TTToUT1(jdTT)
	gastDeg := coord.GAST(jdUT1)
	return normalizeAngle(gastDeg * math.Pi / 180.0)
}
