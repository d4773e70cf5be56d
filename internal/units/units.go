// Package units implements the conversion engine: fixed per-category factor
// tables plus the affine temperature formulas. Everything here is pure; no
// I/O, no shared mutable state.
package units

import (
	"errors"
	"fmt"
)

// Category selects the unit set and conversion strategy.
type Category string

const (
	CategoryLength      Category = "Length"
	CategoryWeight      Category = "Weight"
	CategoryTemperature Category = "Temperature"
	CategoryVolume      Category = "Volume"
)

// ErrLookup marks unknown-category and unknown-unit failures. Wrapped
// errors always name the offending key.
var ErrLookup = errors.New("LOOKUP_FAILURE")

// Categories returns the supported categories in display order.
func Categories() []Category {
	return []Category{CategoryLength, CategoryWeight, CategoryTemperature, CategoryVolume}
}

// ParseCategory validates a raw category label.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryLength, CategoryWeight, CategoryTemperature, CategoryVolume:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrLookup, s)
}

// UnitsFor returns the category's units in display order, or nil for an
// unknown category.
func UnitsFor(category Category) []string {
	units, ok := unitOrder[category]
	if !ok {
		return nil
	}
	out := make([]string, len(units))
	copy(out, units)
	return out
}

// BaseUnit returns the reference unit whose factor is 1.0. Temperature
// reports its pivot scale.
func BaseUnit(category Category) string {
	switch category {
	case CategoryLength:
		return "meters"
	case CategoryWeight:
		return "kilograms"
	case CategoryVolume:
		return "liters"
	case CategoryTemperature:
		return "Celsius"
	}
	return ""
}

// IsValidUnit reports whether unit belongs to category's unit set.
func IsValidUnit(category Category, unit string) bool {
	for _, u := range unitOrder[category] {
		if u == unit {
			return true
		}
	}
	return false
}
