package convertunits

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitconv/internal/common/validation"
	"unitconv/internal/units"
)

// TestLogger implements Logger for testing
type TestLogger struct {
	t *testing.T
}

func (l *TestLogger) Info(msg string, fields map[string]interface{}) {
	l.t.Logf("INFO: %s %v", msg, fields)
}

func (l *TestLogger) Warn(msg string, fields map[string]interface{}) {
	l.t.Logf("WARN: %s %v", msg, fields)
}

func (l *TestLogger) Error(msg string, fields map[string]interface{}) {
	l.t.Logf("ERROR: %s %v", msg, fields)
}

func (l *TestLogger) With(fields map[string]interface{}) Logger {
	return l
}

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), &TestLogger{t: t})
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		expectedErr    error
		errContains    string
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name:  "feet to meters",
			input: &Input{Value: 5.0, FromUnit: "feet", ToUnit: "meters", Category: "Length"},
			validateOutput: func(t *testing.T, output *Output) {
				assert.InDelta(t, 1.524, output.Result, 1e-9)
				assert.Equal(t, "5 feet = 1.5240 meters", output.Formatted)
				assert.Equal(t, units.CategoryLength, output.Category)
			},
		},
		{
			name:  "numeric string value is coerced",
			input: &Input{Value: "12.5", FromUnit: "kilograms", ToUnit: "grams", Category: "Weight"},
			validateOutput: func(t *testing.T, output *Output) {
				assert.InDelta(t, 12500.0, output.Result, 1e-9)
				assert.Equal(t, 12.5, output.Value)
			},
		},
		{
			name:  "negative temperature is valid",
			input: &Input{Value: -40.0, FromUnit: "Fahrenheit", ToUnit: "Celsius", Category: "Temperature"},
			validateOutput: func(t *testing.T, output *Output) {
				assert.InDelta(t, -40.0, output.Result, 1e-9)
			},
		},
		{
			name:  "zero is valid for linear categories",
			input: &Input{Value: 0.0, FromUnit: "meters", ToUnit: "feet", Category: "Length"},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 0.0, output.Result)
			},
		},
		{
			name:        "negative length is rejected",
			input:       &Input{Value: -5.0, FromUnit: "feet", ToUnit: "meters", Category: "Length"},
			expectedErr: ErrInvalidInput,
			errContains: "negative value",
		},
		{
			name:        "negative weight is rejected",
			input:       &Input{Value: -1.0, FromUnit: "kilograms", ToUnit: "pounds", Category: "Weight"},
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "unknown category",
			input:       &Input{Value: 5.0, FromUnit: "meters", ToUnit: "feet", Category: "Speed"},
			expectedErr: units.ErrLookup,
			errContains: "Speed",
		},
		{
			name:        "unknown unit",
			input:       &Input{Value: 5.0, FromUnit: "furlongs", ToUnit: "meters", Category: "Length"},
			expectedErr: units.ErrLookup,
			errContains: "furlongs",
		},
		{
			name:        "non-numeric value",
			input:       &Input{Value: "plenty", FromUnit: "meters", ToUnit: "feet", Category: "Length"},
			expectedErr: ErrNumericCoercion,
		},
		{
			name:        "nil value",
			input:       &Input{Value: nil, FromUnit: "meters", ToUnit: "feet", Category: "Length"},
			expectedErr: ErrNumericCoercion,
		},
		{
			name:        "non-finite value",
			input:       &Input{Value: "NaN", FromUnit: "meters", ToUnit: "feet", Category: "Length"},
			expectedErr: ErrInvalidInput,
			errContains: "finite",
		},
		{
			name:        "missing units",
			input:       &Input{Value: 5.0, FromUnit: "", ToUnit: "meters", Category: "Length"},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t)
			output, err := handler.Execute(context.Background(), tt.input)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr), "expected %v, got %v", tt.expectedErr, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, output)
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func TestGetInputSchema(t *testing.T) {
	schema := GetInputSchema()

	valid := map[string]interface{}{
		"value":     5.0,
		"from_unit": "feet",
		"to_unit":   "meters",
		"category":  "Length",
	}
	result := validation.ValidateInput(valid, schema)
	assert.True(t, result.Valid, "errors: %v", result.GetErrorMessages())

	missing := map[string]interface{}{
		"value":     5.0,
		"from_unit": "feet",
		"to_unit":   "meters",
	}
	result = validation.ValidateInput(missing, schema)
	require.False(t, result.Valid)
	assert.True(t, result.HasErrors("category"))

	emptyCategory := map[string]interface{}{
		"value":     5.0,
		"from_unit": "feet",
		"to_unit":   "meters",
		"category":  "",
	}
	result = validation.ValidateInput(emptyCategory, schema)
	require.False(t, result.Valid)
	assert.True(t, result.HasErrors("category"))

	// Unknown categories pass the shape check; the engine names them in
	// its own lookup failure.
	unknownCategory := map[string]interface{}{
		"value":     5.0,
		"from_unit": "feet",
		"to_unit":   "meters",
		"category":  "Speed",
	}
	result = validation.ValidateInput(unknownCategory, schema)
	assert.True(t, result.Valid)
}
