package ask

import (
	"math"
	"sort"
	"sync"
)

// Quantum calendar domain constants (project-specific, not astronomical).
const (
	quantumBaseMS     = 1_344_643_200_000.0
	quantumDayMS      = 86_459_178.082191780821918
	quantumExtraDayMS = 43_229_589.41095890410959
	quantumYearMS     = 31_557_600_000.0
	quantumMaxMS      = 4_090_089_600_000.0

	quantumSpecialYear = 11
	quantumSpecialDay  = 121

	quantumDaysPerYear = 365
)

// QuantumLen is the fixed length of the quantum-components buffer.
const QuantumLen = 3

var quantumBuffer [QuantumLen]float64

// quantumStep is one entry of the precomputed cumulative-time table: the
// elapsed milliseconds from quantumBaseMS at which (year, dayOfYear)
// begins.
type quantumStep struct {
	cumMS     float64
	year      int
	dayOfYear int
}

var (
	quantumOnce  sync.Once
	quantumTable []quantumStep
)

// buildQuantumTable walks the virtual calendar from quantumBaseMS in
// quantumDayMS steps, inserting the two special half-days at
// (quantumSpecialYear, quantumSpecialDay), until the cumulative time
// exceeds quantumMaxMS. The result is sorted by construction.
func buildQuantumTable() {
	var table []quantumStep
	cum := 0.0
	year := 0
	day := 0
	for cum <= quantumMaxMS {
		table = append(table, quantumStep{cumMS: cum, year: year, dayOfYear: day})
		if year == quantumSpecialYear && day == quantumSpecialDay {
			cum += quantumExtraDayMS
			table = append(table, quantumStep{cumMS: cum, year: year, dayOfYear: day})
			cum += quantumExtraDayMS
		} else {
			cum += quantumDayMS
		}
		day++
		if day >= quantumDaysPerYear {
			day = 0
			year++
		}
	}
	quantumTable = table
}

// GetQuantumTimeComponents decomposes a civil instant into
// [day_in_decade, decade_index, year_index], writing the result into the
// quantum-components buffer and returning a pointer to its first element.
//
// epochMS is a Unix-epoch millisecond instant; tzOffsetMinutes is the
// signed minute offset to local civil time. Returns nil (buffer
// unchanged) if epochMS is not finite.
func GetQuantumTimeComponents(epochMS, tzOffsetMinutes float64) *float64 {
	if math.IsNaN(epochMS) || math.IsInf(epochMS, 0) {
		return nil
	}

	quantumOnce.Do(buildQuantumTable)

	// Only the caller's timezone offset is applied here; no separate fixed
	// 4-hour civil-midnight shift is added or subtracted, and quantumBaseMS
	// is the unshifted instant 2012-08-11 00:00 UTC.
	adjusted := epochMS - tzOffsetMinutes*60*1000
	elapsed := adjusted - quantumBaseMS

	// Table boundaries and caller instants are both millisecond epoch
	// values; rounding to the nearest millisecond before comparing keeps
	// a boundary instant that lands sub-millisecond below a cumulative
	// step (as float64 summation of quantumDayMS's repeating decimal
	// does) from being sorted into the wrong day.
	elapsedMS := math.Round(elapsed)
	idx := sort.Search(len(quantumTable), func(i int) bool {
		return math.Round(quantumTable[i].cumMS) > elapsedMS
	}) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(quantumTable) {
		idx = len(quantumTable) - 1
	}

	step := quantumTable[idx]
	decade := step.dayOfYear / 10
	dayInDecade := step.dayOfYear - decade*10

	quantumBuffer[0] = float64(dayInDecade)
	quantumBuffer[1] = float64(decade)
	quantumBuffer[2] = float64(step.year)

	return &quantumBuffer[0]
}
