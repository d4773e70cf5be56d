// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"unitconv/internal/units"
)

// LoadCatalog reads a catalog document from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat Catalog
	err = json.Unmarshal(data, &cat)
	return &cat, err
}

// Default builds the catalog from the tables the conversion engine actually
// uses, so the published document can never drift from the code.
func Default(version string) *Catalog {
	categories := units.Categories()
	cat := &Catalog{
		Version:    version,
		Categories: make([]CategoryEntry, 0, len(categories)),
	}

	for _, category := range categories {
		entry := CategoryEntry{
			Name:     string(category),
			Kind:     KindLinear,
			BaseUnit: units.BaseUnit(category),
		}
		if category == units.CategoryTemperature {
			entry.Kind = KindAffine
		}
		for _, unit := range units.UnitsFor(category) {
			ue := UnitEntry{Name: unit}
			if factor, ok := units.Factor(category, unit); ok {
				ue.Factor = factor
			}
			entry.Units = append(entry.Units, ue)
		}
		cat.Categories = append(cat.Categories, entry)
	}

	return cat
}

// Find returns the entry for the named category.
func (c *Catalog) Find(name string) (*CategoryEntry, bool) {
	for i := range c.Categories {
		if c.Categories[i].Name == name {
			return &c.Categories[i], true
		}
	}
	return nil, false
}

// Validate checks the catalog's internal consistency.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}

	for _, entry := range c.Categories {
		if entry.Name == "" {
			return fmt.Errorf("catalog has a category without a name")
		}
		if entry.Kind != KindLinear && entry.Kind != KindAffine {
			return fmt.Errorf("category %q has unknown kind %q", entry.Name, entry.Kind)
		}
		if entry.BaseUnit == "" {
			return fmt.Errorf("category %q has no base unit", entry.Name)
		}
		if len(entry.Units) == 0 {
			return fmt.Errorf("category %q has no units", entry.Name)
		}

		foundBase := false
		for _, unit := range entry.Units {
			if unit.Name == "" {
				return fmt.Errorf("category %q has a unit without a name", entry.Name)
			}
			if unit.Name == entry.BaseUnit {
				foundBase = true
				if entry.Kind == KindLinear && unit.Factor != 1.0 {
					return fmt.Errorf("category %q base unit %q has factor %g, want 1", entry.Name, entry.BaseUnit, unit.Factor)
				}
			}
			if entry.Kind == KindLinear && unit.Factor <= 0 {
				return fmt.Errorf("category %q unit %q has non-positive factor %g", entry.Name, unit.Name, unit.Factor)
			}
		}
		if !foundBase {
			return fmt.Errorf("category %q is missing its base unit %q", entry.Name, entry.BaseUnit)
		}
	}

	return nil
}
