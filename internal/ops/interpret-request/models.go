package interpretrequest

import (
	"unitconv/internal/models"
)

// Input represents the input for the interpret-request operation
type Input struct {
	// Text is the natural-language conversion request, e.g.
	// "how many meters is 5 feet".
	Text string `json:"text"`
}

// Output is the structured conversion request recovered from the text.
// It feeds directly into the convert-units operation.
type Output = models.ConversionRequest
