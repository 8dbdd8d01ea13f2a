// Package jsonutil provides JSON conversion utilities for columns that
// store collections as serialized strings.
package jsonutil

import "encoding/json"

// StringSliceToJSON converts a slice of strings to a JSON array string.
// Returns "[]" for empty or nil slices.
//
// Example:
//
//	[]string{"vpn", "billing"} -> `["vpn","billing"]`
//	[]string{}                 -> "[]"
//	nil                        -> "[]"
func StringSliceToJSON(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// JSONToStringSlice parses a JSON array string back into a slice.
// Empty input and malformed JSON both yield nil.
func JSONToStringSlice(raw string) []string {
	if raw == "" || raw == "[]" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}
