// Package timescale converts between the time scales used in orbit
// propagation: UTC (what clocks and TLEs report), UT1 (true Earth
// rotation, tracked via ΔT), TT (Terrestrial Time, uniform and used in
// orbital dynamics), and TDB (Barycentric Dynamical Time, TT plus a
// sub-millisecond periodic correction).
package timescale

import (
	"math"
	"time"
)

// SecPerDay is the number of SI seconds in a day.
const SecPerDay = 86400.0

const j2000JD = 2451545.0

// leapSecondStep records the TAI-UTC offset (seconds) introduced at each
// leap second boundary, keyed by the UTC Julian date the step takes
// effect. Every leap second from 1972-01-01 through 2017-01-01 is listed;
// offsets before the first entry and after the last are clamped.
var leapSecondStep = []struct {
	jdUTC  float64
	offset float64
}{
	{2441317.5, 10}, // 1972-01-01
	{2441499.5, 11}, // 1972-07-01
	{2441683.5, 12}, // 1973-01-01
	{2442048.5, 13}, // 1974-01-01
	{2442413.5, 14}, // 1975-01-01
	{2442778.5, 15}, // 1976-01-01
	{2443144.5, 16}, // 1977-01-01
	{2443509.5, 17}, // 1978-01-01
	{2443874.5, 18}, // 1979-01-01
	{2444239.5, 19}, // 1980-01-01
	{2444786.5, 20}, // 1981-07-01
	{2445151.5, 21}, // 1982-07-01
	{2445516.5, 22}, // 1983-07-01
	{2446247.5, 23}, // 1985-07-01
	{2447161.5, 24}, // 1988-01-01
	{2447892.5, 25}, // 1990-01-01
	{2448257.5, 26}, // 1991-01-01
	{2448804.5, 27}, // 1992-07-01
	{2449169.5, 28}, // 1993-07-01
	{2449534.5, 29}, // 1994-07-01
	{2450083.5, 30}, // 1996-01-01
	{2450630.5, 31}, // 1997-07-01
	{2451179.5, 32}, // 1999-01-01
	{2453736.5, 33}, // 2006-01-01
	{2454832.5, 34}, // 2009-01-01
	{2456109.5, 35}, // 2012-07-01
	{2457204.5, 36}, // 2015-07-01
	{2457754.5, 37}, // 2017-01-01
}

// LeapSecondOffset returns TAI-UTC (seconds) at the given UTC Julian date.
// Dates before 1972-01-01 return the initial 10-second offset; dates after
// the last known leap second return that value unchanged (no future leap
// seconds are assumed).
func LeapSecondOffset(jdUTC float64) float64 {
	offset := leapSecondStep[0].offset
	for _, step := range leapSecondStep {
		if jdUTC < step.jdUTC {
			break
		}
		offset = step.offset
	}
	return offset
}

// deltaTTable holds ΔT = TT - UT1 in seconds at the listed calendar years.
// Entries before 1955 or so are derived from historical estimates of
// Earth's rotation (eclipse records, lunar occultations); later entries
// are IERS-observed values; entries beyond the present are long-range
// extrapolations and carry growing uncertainty. DeltaT clamps outside
// [deltaTTable[0].year, deltaTTable[last].year] and linearly interpolates
// between bracketing entries otherwise.
var deltaTTable = []struct {
	year  float64
	value float64
}{
	{1800.0, 18.3670},
	{1810.0, 15.1},
	{1820.0, 12.3},
	{1830.0, 9.7},
	{1840.0, 7.6},
	{1850.0, 6.0},
	{1860.0, 7.1},
	{1870.0, 8.0},
	{1880.0, 2.1},
	{1890.0, -4.3},
	{1900.0, -2.8},
	{1910.0, 10.2},
	{1920.0, 21.1},
	{1930.0, 24.3},
	{1940.0, 24.3},
	{1950.0, 29.1},
	{1960.0, 33.1},
	{1970.0, 40.2},
	{1980.0, 50.5},
	{1990.0, 56.9},
	{2000.0, 63.829},
	{2010.0, 66.1},
	{2020.0, 69.4},
	{2030.0, 73.0},
	{2050.0, 93.0},
	{2100.0, 202.0},
	{2150.0, 320.0},
	{2200.0, 441.0},
}

// DeltaT returns an interpolated estimate of ΔT = TT - UT1, in seconds, at
// the given decimal calendar year.
func DeltaT(year float64) float64 {
	n := len(deltaTTable)
	if year <= deltaTTable[0].year {
		return deltaTTable[0].value
	}
	if year >= deltaTTable[n-1].year {
		return deltaTTable[n-1].value
	}
	idx := 0
	for idx < n-2 && deltaTTable[idx+1].year < year {
		idx++
	}
	y0, v0 := deltaTTable[idx].year, deltaTTable[idx].value
	y1, v1 := deltaTTable[idx+1].year, deltaTTable[idx+1].value
	frac := (year - y0) / (y1 - y0)
	return v0 + frac*(v1-v0)
}

// unixEpochJDUTC is the UTC Julian date of 1970-01-01T00:00:00.
const unixEpochJDUTC = 2440587.5

// TimeToJDUTC converts a time.Time to a UTC Julian date, preserving
// sub-second precision. The time is interpreted in UTC regardless of its
// original location.
func TimeToJDUTC(t time.Time) float64 {
	u := t.UTC()
	sec := float64(u.Unix()) + float64(u.Nanosecond())/1e9
	return unixEpochJDUTC + sec/SecPerDay
}

// UTCToTT converts a UTC Julian date to TT, via TAI: TT = UTC + (TAI-UTC) +
// 32.184s, the fixed historical offset between TAI and TT.
func UTCToTT(jdUTC float64) float64 {
	return jdUTC + (LeapSecondOffset(jdUTC)+32.184)/SecPerDay
}

// yearOf approximates the decimal calendar year of a TT Julian date for
// ΔT table lookup. Precision to a fraction of a year is sufficient since
// DeltaT varies slowly.
func yearOf(jdTT float64) float64 {
	return 2000.0 + (jdTT-j2000JD)/365.25
}

// TTToUT1 converts a TT Julian date to UT1 using DeltaT's estimate of
// ΔT = TT - UT1 at that epoch.
func TTToUT1(jdTT float64) float64 {
	return jdTT - DeltaT(yearOf(jdTT))/SecPerDay
}

// TDBMinusTT returns TDB - TT in seconds at the given TT Julian date. The
// difference is a periodic term driven by Earth's orbital eccentricity,
// at most a couple of milliseconds, following the approximation in
// Explanatory Supplement to the Astronomical Almanac (1992), §2.222-1.
func TDBMinusTT(jdTT float64) float64 {
	g := 357.53 + 0.9856003*(jdTT-j2000JD)
	gRad := g * math.Pi / 180.0
	return 0.001658*math.Sin(gRad) + 0.000014*math.Sin(2*gRad)
}
