// pkg/catalog/schema.go
package catalog

const (
	// KindLinear marks categories converted through factors to a base unit.
	KindLinear = "linear"
	// KindAffine marks categories converted through offset formulas.
	KindAffine = "affine"
)

type Catalog struct {
	Version     string          `json:"version"`
	LastUpdated string          `json:"lastUpdated"`
	Categories  []CategoryEntry `json:"categories"`
}

type CategoryEntry struct {
	Name     string      `json:"name"`
	Kind     string      `json:"kind"`
	BaseUnit string      `json:"baseUnit"`
	Units    []UnitEntry `json:"units"`
}

type UnitEntry struct {
	Name string `json:"name"`
	// Factor is the multiplier to the category's base unit. Zero for
	// affine categories, whose conversions are formula-driven.
	Factor float64 `json:"factor,omitempty"`
}
