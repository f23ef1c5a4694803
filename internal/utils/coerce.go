package utils

import (
	"strconv"
	"strings"
)

// CoerceBoolean interprets a string flag value.
//
// "true" and "1" (case-insensitive, surrounding whitespace ignored) are true;
// every other value, including the empty string, is false.
func CoerceBoolean(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == "true" || v == "1"
}

// ParseNumber parses a decimal string into an int when it has no fractional
// part or exponent, and into a float64 otherwise.
//
// Example:
//
//	ParseNumber("42")   // 42, nil
//	ParseNumber("0.5")  // 0.5, nil
//	ParseNumber("abc")  // nil, error
func ParseNumber(value string) (any, error) {
	v := strings.TrimSpace(value)
	if !strings.ContainsAny(v, ".eE") {
		if n, err := strconv.Atoi(v); err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}
