// internal/ops/convert-units/models.go
package convertunits

import "unitconv/internal/models"

// Input is the manual-path request. Value stays untyped at the boundary so
// numeric coercion is an explicit step with its own failure mode: callers
// may send a JSON number or a numeric string.
type Input struct {
	Value    interface{} `json:"value"`
	FromUnit string      `json:"from_unit"`
	ToUnit   string      `json:"to_unit"`
	Category string      `json:"category"`
}

// Output is the flattened conversion result shared with the AI path.
type Output = models.ConversionResult
