package interpretrequest

import "fmt"

// promptTemplate instructs the model to answer with a single JSON object.
// The response contract here must stay in sync with GetResponseSchema.
const promptTemplate = `Parse this conversion request: "%s"
Return ONLY valid JSON in this format:
{
    "value": number,
    "from_unit": "string",
    "to_unit": "string",
    "category": "string"
}
The category must be one of: "Length", "Weight", "Temperature", or "Volume".
Use full unit names like "centimeters" not "cm", "kilograms" not "kg".`

// BuildPrompt renders the completion prompt for a conversion request.
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
