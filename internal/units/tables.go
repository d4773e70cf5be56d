// internal/units/tables.go
package units

// Factor tables map each unit to its multiplicative factor relative to the
// category's base unit. One entry per unit keeps the table O(units) instead
// of O(unit pairs).
var (
	lengthFactors = map[string]float64{
		"meters":      1.0,
		"feet":        0.3048,
		"inches":      0.0254,
		"centimeters": 0.01,
		"kilometers":  1000.0,
		"miles":       1609.34,
	}

	weightFactors = map[string]float64{
		"kilograms": 1.0,
		"pounds":    0.453592,
		"grams":     0.001,
		"ounces":    0.0283495,
	}

	// "cubic feet" keeps its space; unit labels are opaque strings.
	volumeFactors = map[string]float64{
		"liters":      1.0,
		"gallons":     3.78541,
		"milliliters": 0.001,
		"cubic feet":  28.3168,
	}
)

// unitOrder fixes the display order of each category's units.
var unitOrder = map[Category][]string{
	CategoryLength:      {"meters", "feet", "inches", "centimeters", "kilometers", "miles"},
	CategoryWeight:      {"kilograms", "pounds", "grams", "ounces"},
	CategoryTemperature: {"Celsius", "Fahrenheit", "Kelvin"},
	CategoryVolume:      {"liters", "gallons", "milliliters", "cubic feet"},
}

func factorTable(category Category) map[string]float64 {
	switch category {
	case CategoryLength:
		return lengthFactors
	case CategoryWeight:
		return weightFactors
	case CategoryVolume:
		return volumeFactors
	}
	return nil
}

// Factor returns the unit's factor relative to the category base unit.
// Temperature has no factors; it always reports false.
func Factor(category Category, unit string) (float64, bool) {
	table := factorTable(category)
	if table == nil {
		return 0, false
	}
	f, ok := table[unit]
	return f, ok
}
