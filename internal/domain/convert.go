package domain

// Weight units understood by ConvertWeight.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

const kgToLb = 2.2046226218

// ConvertWeight converts a weight value between "kg" and "lb".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == UnitKg && to == UnitLb {
		return v * kgToLb
	}
	if from == UnitLb && to == UnitKg {
		return v / kgToLb
	}
	return v
}

// ValidUnit reports whether unit is one of the supported weight units.
func ValidUnit(unit string) bool {
	return unit == UnitKg || unit == UnitLb
}
