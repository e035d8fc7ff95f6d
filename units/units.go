// Package units holds the one unit-conversion constant the kernel's
// distance math needs.
package units

// AUToKm is the IAU 2012 nominal astronomical unit in kilometers.
const AUToKm = 149597870.7
