// Example: Astronomical State Kernel one-shot dump.
//
// Computes the fixed-size Sun/Moon/Earth/sub-point state for a single
// Julian Day and prints it, along with the quantum-calendar decomposition
// of the same instant. Demonstrates the kernel's zero-allocation buffer
// contract: ComputeState and GetQuantumTimeComponents return pointers into
// package-level arrays that the caller must copy out before the next call.
package main

import (
	"flag"
	"fmt"
	"math"
	"time"
	"unsafe"

	"github.com/kosmos-engine/astrokernel/ask"
	"github.com/kosmos-engine/astrokernel/timescale"
)

func main() {
	jdFlag := flag.Float64("jd", 0, "UTC Julian Day to evaluate (0 = use -now)")
	now := flag.Bool("now", true, "evaluate at the current UTC instant (ignored if -jd is set)")
	tzMinutes := flag.Float64("tz", 0, "timezone offset in minutes for the quantum calendar")
	flag.Parse()

	jdUTC := *jdFlag
	if jdUTC == 0 && *now {
		jdUTC = timescale.TimeToJDUTC(time.Now().UTC())
	}

	fmt.Printf("JD (UTC): %.6f\n\n", jdUTC)

	state := ask.ComputeState(jdUTC)
	if state == nil {
		fmt.Println("ComputeState: invalid Julian Day, no output")
		return
	}
	s := unsafe.Slice(state, ask.OutLen())
	fmt.Println("Sun geocentric position (AU, ecliptic Cartesian):")
	fmt.Printf("  x=%.6f y=%.6f z=%.6f\n", s[0], s[1], s[2])
	fmt.Println("Moon geocentric position (AU, ecliptic Cartesian):")
	fmt.Printf("  x=%.6f y=%.6f z=%.6f\n", s[3], s[4], s[5])
	fmt.Println("Earth heliocentric position (AU, ecliptic Cartesian):")
	fmt.Printf("  x=%.6f y=%.6f z=%.6f\n", s[6], s[7], s[8])
	fmt.Printf("Solar sub-point: lon=%.4f rad (%.2f deg) lat=%.4f rad (%.2f deg)\n\n",
		s[9], s[9]*180/math.Pi, s[10], s[10]*180/math.Pi)

	epochMS := (jdUTC - 2440587.5) * 86400000.0
	quantum := ask.GetQuantumTimeComponents(epochMS, *tzMinutes)
	if quantum == nil {
		fmt.Println("GetQuantumTimeComponents: invalid epoch, no output")
		return
	}
	q := unsafe.Slice(quantum, ask.QuantumLen)
	fmt.Printf("Quantum calendar: day_in_decade=%.0f decade=%.0f year=%.0f\n", q[0], q[1], q[2])

	solstice := ask.NextWinterSolsticeFrom(jdUTC)
	if !math.IsNaN(solstice) {
		fmt.Printf("\nNext winter solstice: JD %.4f\n", solstice)
	}

	fmt.Printf("\nKernel version: %s\n", ask.GetVersion())
}
