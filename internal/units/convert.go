// internal/units/convert.go
package units

import "fmt"

// Convert converts value from fromUnit to toUnit within category. Linear
// categories normalize through the base unit; temperature pivots through
// Celsius because Fahrenheit and Kelvin are affine, not multiplicative,
// transforms. No rounding is applied; formatting belongs to the boundary.
func Convert(value float64, fromUnit, toUnit string, category Category) (float64, error) {
	switch category {
	case CategoryTemperature:
		return convertTemperature(value, fromUnit, toUnit)
	case CategoryLength, CategoryWeight, CategoryVolume:
		factors := factorTable(category)
		from, ok := factors[fromUnit]
		if !ok {
			return 0, fmt.Errorf("%w: unknown unit %q in category %q", ErrLookup, fromUnit, category)
		}
		to, ok := factors[toUnit]
		if !ok {
			return 0, fmt.Errorf("%w: unknown unit %q in category %q", ErrLookup, toUnit, category)
		}
		return value * from / to, nil
	default:
		return 0, fmt.Errorf("%w: unknown category %q", ErrLookup, category)
	}
}

func convertTemperature(value float64, fromUnit, toUnit string) (float64, error) {
	celsius, err := toCelsius(value, fromUnit)
	if err != nil {
		return 0, err
	}
	return fromCelsius(celsius, toUnit)
}

// toCelsius applies the inverse of the unit's defining formula.
func toCelsius(value float64, unit string) (float64, error) {
	switch unit {
	case "Celsius":
		return value, nil
	case "Fahrenheit":
		return (value - 32) * 5 / 9, nil
	case "Kelvin":
		return value - 273.15, nil
	}
	return 0, fmt.Errorf("%w: unknown unit %q in category %q", ErrLookup, unit, CategoryTemperature)
}

// fromCelsius applies the unit's forward formula.
func fromCelsius(value float64, unit string) (float64, error) {
	switch unit {
	case "Celsius":
		return value, nil
	case "Fahrenheit":
		return value*9/5 + 32, nil
	case "Kelvin":
		return value + 273.15, nil
	}
	return 0, fmt.Errorf("%w: unknown unit %q in category %q", ErrLookup, unit, CategoryTemperature)
}
