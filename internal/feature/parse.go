package feature

import (
	"encoding/json"
	"math"

	"github.com/drakos74/autoop/internal/model"
)

// Parse converts a raw cell value to a float.
// Missing values and non-numeric strings are reported as not parsable.
func Parse(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case json.Number:
		return model.ParseNumber(n.String())
	case string:
		return model.ParseNumber(n)
	}
	return 0, false
}

func isInteger(f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return math.Trunc(f) == f
}
