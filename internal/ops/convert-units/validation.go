package convertunits

import (
	"unitconv/internal/common/validation"
)

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"value", "from_unit", "to_unit", "category"},
		Properties: map[string]validation.Property{
			"value": {
				Description: "Numeric value to convert (number or numeric string)",
			},
			"from_unit": {
				Type:        "string",
				Description: "Source unit within the category",
				MinLength:   intPtr(1),
			},
			"to_unit": {
				Type:        "string",
				Description: "Target unit within the category",
				MinLength:   intPtr(1),
			},
			// Category membership is the engine's call, so unknown values
			// surface as lookup failures rather than schema rejections.
			"category": {
				Type:        "string",
				Description: "Measurement category: Length, Weight, Temperature, or Volume",
				MinLength:   intPtr(1),
			},
		},
	}
}

func GetOutputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"value", "from_unit", "to_unit", "category", "result", "formatted"},
		Properties: map[string]validation.Property{
			"value":     {Type: "number", Description: "Coerced input value"},
			"from_unit": {Type: "string", Description: "Source unit"},
			"to_unit":   {Type: "string", Description: "Target unit"},
			"category":  {Type: "string", Description: "Measurement category"},
			"result":    {Type: "number", Description: "Converted value, unrounded"},
			"formatted": {Type: "string", Description: "Human-readable rendering with four decimal places"},
		},
	}
}

func intPtr(i int) *int {
	return &i
}
