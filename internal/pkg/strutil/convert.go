// Package strutil converts query string values into typed filters.
package strutil

import (
	"strconv"
	"strings"
	"time"
)

// ConvertToInt parses s as a base-10 int, returning 0 on failure.
func ConvertToInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ConvertToBoolPtr parses s as a bool. Empty or malformed input yields nil, meaning "no filter".
func ConvertToBoolPtr(s string) *bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

// ConvertToTime accepts RFC3339 timestamps or plain YYYY-MM-DD dates (UTC midnight).
func ConvertToTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// NormalizeEmail trims and lower-cases an address so lookups and limiter keys agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
