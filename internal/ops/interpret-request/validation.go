package interpretrequest

import (
	"unitconv/internal/common/validation"
)

// GetInputSchema returns the JSON schema for interpret-request input
func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"text": {
				Type:        "string",
				Description: "Natural-language conversion request",
				MinLength:   intPtr(1),
			},
		},
		Required: []string{"text"},
	}
}

// GetResponseSchema returns the JSON schema the model's reply must satisfy.
// The value property is deliberately untyped: models sometimes quote the
// number, and coercion is handled as its own step with its own failure mode.
// Category membership is likewise checked separately so the error can name
// the offending value.
func GetResponseSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"value": {
				Description: "Quantity to convert",
			},
			"from_unit": {
				Type:        "string",
				Description: "Source unit name",
				MinLength:   intPtr(1),
			},
			"to_unit": {
				Type:        "string",
				Description: "Target unit name",
				MinLength:   intPtr(1),
			},
			"category": {
				Type:        "string",
				Description: "Conversion category",
				MinLength:   intPtr(1),
			},
		},
		Required: []string{"value", "from_unit", "to_unit", "category"},
	}
}

// Helper function to create int pointers
func intPtr(i int) *int {
	return &i
}
