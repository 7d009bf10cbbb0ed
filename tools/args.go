package tools

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Args holds decoded tool arguments. Models are sloppy about types, so
// every accessor is tolerant: numbers may arrive as JSON numbers or
// numeric strings, and anything invalid or missing resolves to absent
// rather than an error.
type Args map[string]interface{}

// DecodeArgs parses a raw argument payload. A malformed payload is
// treated as an empty argument set, never a failure.
func DecodeArgs(raw json.RawMessage) Args {
	if len(raw) == 0 {
		return Args{}
	}
	var args Args
	if err := json.Unmarshal(raw, &args); err != nil || args == nil {
		return Args{}
	}
	return args
}

// String returns the string value for key, or "" when absent.
func (a Args) String(key string) string {
	v, ok := a[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Int returns the integer value for key, accepting JSON numbers and
// numeric strings. Invalid, zero, or missing values return nil.
func (a Args) Int(key string) *int {
	v, ok := a[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		i := int(n)
		if i == 0 {
			return nil
		}
		return &i
	case string:
		n = strings.TrimSpace(n)
		if n == "" {
			return nil
		}
		i, err := strconv.Atoi(n)
		if err != nil || i == 0 {
			return nil
		}
		return &i
	default:
		return nil
	}
}

// Bool returns the boolean value for key, accepting JSON booleans and
// "true"/"false" strings. Anything else returns nil.
func (a Args) Bool(key string) *bool {
	v, ok := a[key]
	if !ok {
		return nil
	}
	switch b := v.(type) {
	case bool:
		return &b
	case string:
		parsed, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(b)))
		if err != nil {
			return nil
		}
		return &parsed
	default:
		return nil
	}
}

// Limit returns the result limit for key, falling back to def when the
// value is absent or unusable.
func (a Args) Limit(key string, def int) int {
	if n := a.Int(key); n != nil && *n > 0 {
		return *n
	}
	return def
}
