package ask

// version is the kernel's semver-shaped build identifier. Sourced from a
// package-level constant since the kernel has no environment access to
// introspect build info or VCS state.
const version = "1.0.0"

// GetMeanObliquity returns the mean obliquity of the ecliptic (radians)
// at the given UTC Julian date, computing TT internally.
func GetMeanObliquity(jdUTC float64) float64 {
	jdTT := jdUTC + DeltaT(jdUTC)/86400.0
	return meanObliquityAt(jdTT)
}

// GetApparentSiderealTime returns apparent sidereal time (radians,
// wrapped to [0, 2π)) at the given UTC Julian date.
func GetApparentSiderealTime(jdUTC float64) float64 {
	return apparentSiderealTimeAt(jdUTC)
}

// OutLen returns the number of f64 slots ComputeState writes.
func OutLen() int {
	return outLen()
}

// GetVersion returns the kernel's build identifier.
func GetVersion() string {
	return version
}
