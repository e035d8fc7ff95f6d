package coord

// NutationPrecision controls the number of terms used in the nutation series.
type NutationPrecision int

const (
	// NutationStandard uses the 30 largest luni-solar IAU 2000A terms
	// (~1 arcsec precision). It is the only precision mode this build
	// carries; the full 678+687-term series depends on a coefficient
	// table not present in this build (see DESIGN.md).
	NutationStandard NutationPrecision = iota
)

var nutationPrecision = NutationStandard

// SetNutationPrecision sets the nutation precision for the coord package.
// NutationStandard is currently the only supported value.
// Not safe for concurrent use — call once at program startup.
func SetNutationPrecision(p NutationPrecision) {
	nutationPrecision = p
}

// GetNutationPrecision returns the current nutation precision setting.
func GetNutationPrecision() NutationPrecision {
	return nutationPrecision
}
