// README: Plan domain types (raw request and itinerary document).
package plan

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TravelRequest is the raw form input as submitted by the user. It is operator
// input, not a contract: unknown keys pass through untouched and no field is
// validated here.
type TravelRequest map[string]any

// Itinerary is the generated travel plan document in its wire shape (German
// field names). It stays a generic JSON object so that model output of any
// shape can be carried to the validator, and so unknown fields survive the
// round trip.
type Itinerary map[string]any

// String returns the string value of a request field, or "" when the field is
// absent or not a string.
func (r TravelRequest) String(key string) string {
	v, ok := r[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Int returns the integer value of a request field, accepting JSON numbers and
// numeric strings. ok is false when the field is absent or not usable.
func (r TravelRequest) Int(key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// Clone deep-copies the document so that post-validation stages can augment it
// without mutating the validated original.
func (it Itinerary) Clone() Itinerary {
	c, ok := cloneValue(map[string]any(it)).(map[string]any)
	if !ok {
		return Itinerary{}
	}
	return Itinerary(c)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return v
	}
}
