// internal/common/validation/coerce.go
package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CoerceNumber converts a decoded JSON value to float64. Coercion is
// explicit: JSON numbers, integer types, and numeric strings pass; anything
// else fails so callers can report a numeric-coercion error distinct from a
// schema violation.
func CoerceNumber(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("string %q is not numeric", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", v)
	}
}
