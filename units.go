package gridgen

// US Letter page size in millimeters. The page size is fixed, only the
// orientation can be changed.
const (
	PageWidthMM  = 215.9
	PageHeightMM = 279.4
)

// MMPerUnit is the physical size of one document user unit,
// a point at 72 units per inch.
const MMPerUnit = 25.4 / 72

// ToUnits converts a physical length expressed in millimeters to document user units.
func ToUnits(mm float64) float64 {
	return mm / MMPerUnit
}

// ToMillimeters converts a length expressed in document user units back to millimeters.
// It is the exact inverse of ToUnits.
func ToMillimeters(units float64) float64 {
	return units * MMPerUnit
}
