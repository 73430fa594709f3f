package setting

import (
	"encoding/json"
	"strconv"
)

// Decoding conventions applied by callers. The store keeps untyped strings;
// a malformed stored value never surfaces as an error, it falls back to the
// caller's default.

// Bool reports whether name resolves to a true boolean. Stored values "1"
// and "true" decode to true; anything else, including absence, is false.
func (v Values) Bool(name string) bool {
	r, ok := v[name]
	if !ok {
		return false
	}

	return r.Value == "1" || r.Value == "true"
}

// Int decodes name as an integer, returning def on absence or parse failure.
func (v Values) Int(name string, def int) int {
	r, ok := v[name]
	if !ok {
		return def
	}

	n, err := strconv.Atoi(r.Value)
	if err != nil {
		return def
	}

	return n
}

// String returns the resolved value for name, or def when absent.
func (v Values) String(name, def string) string {
	r, ok := v[name]
	if !ok {
		return def
	}

	return r.Value
}

// JSON decodes a JSON-shaped value into dest. On absence or a parse error
// dest is left untouched, so callers pre-fill it with their default.
// Reports whether dest was populated.
func (v Values) JSON(name string, dest any) bool {
	r, ok := v[name]
	if !ok || r.Value == "" {
		return false
	}

	if err := json.Unmarshal([]byte(r.Value), dest); err != nil {
		return false
	}

	return true
}

// BoolString converts a boolean to its stored representation.
func BoolString(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
