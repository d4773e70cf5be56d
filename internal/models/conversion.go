// internal/models/conversion.go
package models

import (
	"fmt"

	"unitconv/internal/units"
)

// ConversionRequest is the validated tuple feeding the conversion engine.
// Instances live for one call; nothing is persisted between requests.
type ConversionRequest struct {
	Value    float64        `json:"value"`
	FromUnit string         `json:"from_unit"`
	ToUnit   string         `json:"to_unit"`
	Category units.Category `json:"category"`
}

// ConversionResult pairs the request with the engine's raw result and its
// boundary rendering.
type ConversionResult struct {
	ConversionRequest
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

// FormatResult renders a conversion the way it is shown to users, with the
// result fixed to four decimal places.
func FormatResult(req ConversionRequest, result float64) string {
	return fmt.Sprintf("%g %s = %.4f %s", req.Value, req.FromUnit, result, req.ToUnit)
}

// NewConversionResult builds the result envelope for a finished conversion.
func NewConversionResult(req ConversionRequest, result float64) ConversionResult {
	return ConversionResult{
		ConversionRequest: req,
		Result:            result,
		Formatted:         FormatResult(req, result),
	}
}

// InterpretationResult couples the caller's original request text with the
// conversion it produced.
type InterpretationResult struct {
	Text string `json:"text"`
	ConversionResult
}
