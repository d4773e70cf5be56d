package interpretrequest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"unitconv/internal/common/validation"
	"unitconv/internal/units"
)

const TaskType = "interpret-request"

var (
	// ErrInvalidInput indicates the request text itself was unusable.
	ErrInvalidInput = errors.New("INVALID_INPUT")
	// ErrJSONMalformed indicates no parseable JSON could be recovered from
	// the model's reply.
	ErrJSONMalformed = errors.New("JSON_MALFORMED")
	// ErrSchemaViolation indicates the reply parsed as JSON but did not
	// carry the expected conversion fields.
	ErrSchemaViolation = errors.New("SCHEMA_VIOLATION")
	// ErrNumericCoercion indicates the reply's value field was not numeric.
	ErrNumericCoercion = errors.New("NUMERIC_COERCION_FAILED")
)

// Completer produces a text completion for a prompt. Satisfied by
// gemini.Client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Logger interface for the operation
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

// Handler handles interpret-request operations
type Handler struct {
	config    *Config
	completer Completer
	logger    Logger
}

// NewHandler creates a new interpret-request handler
func NewHandler(config *Config, completer Completer, log Logger) *Handler {
	return &Handler{
		config:    config,
		completer: completer,
		logger: log.With(map[string]interface{}{
			"taskType": TaskType,
		}),
	}
}

// Execute turns a natural-language conversion request into a structured
// ConversionRequest. The pipeline is: prompt the model, extract a JSON
// candidate from the reply, validate its shape, then validate the category
// and coerce the value. Each stage fails with its own sentinel so callers
// can tell model trouble apart from reply trouble.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	h.logger.Info("processing request", map[string]interface{}{
		"textLength": len(input.Text),
	})

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if h.config.MaxTextLength > 0 && len(text) > h.config.MaxTextLength {
		return nil, fmt.Errorf("%w: text exceeds %d characters", ErrInvalidInput, h.config.MaxTextLength)
	}

	completion, err := h.completer.Complete(ctx, BuildPrompt(text))
	if err != nil {
		// Already carries the service sentinel and diagnostics.
		return nil, err
	}

	candidate, ok := ExtractJSON(completion)
	if !ok {
		h.logger.Warn("model reply contained no JSON", map[string]interface{}{
			"reply": truncate(completion, 200),
		})
		return nil, fmt.Errorf("%w: no JSON value found in model reply", ErrJSONMalformed)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONMalformed, err)
	}

	result := validation.ValidateInput(payload, GetResponseSchema())
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(result.GetErrorMessages(), "; "))
	}

	rawCategory := payload["category"].(string)
	category, err := units.ParseCategory(rawCategory)
	if err != nil {
		return nil, fmt.Errorf("%w: category %q is not one of %v", ErrSchemaViolation, rawCategory, units.Categories())
	}

	value, err := validation.CoerceNumber(payload["value"])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNumericCoercion, err)
	}

	output := &Output{
		Value:    value,
		FromUnit: payload["from_unit"].(string),
		ToUnit:   payload["to_unit"].(string),
		Category: category,
	}

	h.logger.Info("request interpreted", map[string]interface{}{
		"value":    output.Value,
		"fromUnit": output.FromUnit,
		"toUnit":   output.ToUnit,
		"category": output.Category,
	})

	return output, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
