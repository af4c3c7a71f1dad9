package validation

import (
	"encoding/json" // Decoding JSON-encoded form values
	"strconv"       // String coercion helpers
	"strings"       // String manipulation

	"github.com/go-playground/validator/v10" // Field rule engine
)

// Shared validator instance, safe for concurrent use
var validate = validator.New()

// FieldErrors accumulates every failed check per field, so a single 400
// response carries the full picture instead of the first failure.
type FieldErrors map[string][]string

// Add appends a message for a field
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Any reports whether at least one field failed
func (fe FieldErrors) Any() bool {
	return len(fe) > 0
}

// coerceString accepts a plain string value
func coerceString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// coerceNumber accepts JSON numbers and numeric strings
func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true // JSON number
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil // Numeric string, e.g. form input
	}
	return 0, false
}

// coerceInt accepts whole JSON numbers and integer strings
func coerceInt(v any) (int, bool) {
	f, ok := coerceNumber(v)
	if !ok || f != float64(int(f)) {
		return 0, false // Reject fractional values
	}
	return int(f), true
}

// coerceBool accepts booleans and the usual string/number encodings
func coerceBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
	case float64:
		return b != 0, true
	}
	return false, false
}

// coerceStringSlice accepts JSON arrays, repeated form values and
// JSON-encoded array strings
func coerceStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		// Repeated multipart form values; a single JSON-encoded array is
		// also accepted the way a JSON body would carry it
		if len(s) == 1 && strings.HasPrefix(strings.TrimSpace(s[0]), "[") {
			var out []string
			if err := json.Unmarshal([]byte(s[0]), &out); err == nil {
				return out, true
			}
		}
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false // Only string elements are accepted
			}
			out = append(out, str)
		}
		return out, true
	case string:
		var out []string // A JSON-encoded array smuggled in a form field
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return nil, false
		}
		return out, true
	}
	return nil, false
}

// runStruct evaluates validator tags on the coerced input and maps each
// violation to its API field name and message
func runStruct(input any, errs FieldErrors, messages map[string][2]string) {
	err := validate.Struct(input)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return // Non-field error, nothing to attribute
	}
	for _, fe := range verrs {
		if m, known := messages[fe.StructField()]; known {
			errs.Add(m[0], m[1]) // API field name, message
		}
	}
}
