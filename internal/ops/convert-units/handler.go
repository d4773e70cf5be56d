package convertunits

import (
	"context"
	"errors"
	"fmt"
	"math"

	"unitconv/internal/common/validation"
	"unitconv/internal/models"
	"unitconv/internal/units"
)

const (
	TaskType = "convert-units"
)

var (
	ErrInvalidInput    = errors.New("INVALID_INPUT")
	ErrNumericCoercion = errors.New("NUMERIC_COERCION_FAILED")
)

// Logger interface definition
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

type Handler struct {
	config *Config
	logger Logger
}

func NewHandler(config *Config, log Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.With(map[string]interface{}{
			"taskType": TaskType,
		}),
	}
}

// Execute runs one manual-path conversion: coerce the value, validate the
// request at the boundary, and call the engine. Lookup failures from the
// engine pass through untouched (units.ErrLookup).
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	h.logger.Info("processing conversion", map[string]interface{}{
		"fromUnit": input.FromUnit,
		"toUnit":   input.ToUnit,
		"category": input.Category,
	})

	if input.FromUnit == "" || input.ToUnit == "" {
		return nil, fmt.Errorf("%w: from_unit and to_unit are required", ErrInvalidInput)
	}

	category, err := units.ParseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	value, err := validation.CoerceNumber(input.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNumericCoercion, err)
	}

	if err := validateValueRange(category, value); err != nil {
		return nil, err
	}

	result, err := units.Convert(value, input.FromUnit, input.ToUnit, category)
	if err != nil {
		return nil, err
	}

	request := models.ConversionRequest{
		Value:    value,
		FromUnit: input.FromUnit,
		ToUnit:   input.ToUnit,
		Category: category,
	}
	output := models.NewConversionResult(request, result)

	h.logger.Info("conversion completed", map[string]interface{}{
		"category": string(category),
		"fromUnit": input.FromUnit,
		"toUnit":   input.ToUnit,
		"value":    value,
		"result":   result,
	})

	return &output, nil
}

// validateValueRange rejects non-finite values everywhere and negative
// magnitudes for the linear categories. Temperature scales legitimately go
// below zero (-40 Fahrenheit is real weather), so only they accept
// negatives.
func validateValueRange(category units.Category, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: value must be finite", ErrInvalidInput)
	}
	if category == units.CategoryTemperature {
		return nil
	}
	if value < 0 {
		return fmt.Errorf("%w: negative value %g is not valid for category %q", ErrInvalidInput, value, category)
	}
	return nil
}
