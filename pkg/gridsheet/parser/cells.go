package parser

import (
	"encoding/json"
)

// normalizeValue converts decoded JSON numbers to int64 for integers and
// float64 otherwise. Arrays and objects are normalized recursively; other
// values are returned unchanged.
func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		// Beyond float64 range, e.g. 1e400. Kept verbatim as text.
		return val.String()
	case map[string]interface{}:
		for k, item := range val {
			val[k] = normalizeValue(item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = normalizeValue(item)
		}
		return val
	default:
		return v
	}
}
