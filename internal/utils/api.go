package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseIntParam retrieves an integer value from the provided URL query parameters.
// If the key is not present it returns 0. An invalid value returns 0 and
// updates the fieldErrors map.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return 0, fieldErrors
	}
	return n, fieldErrors
}

// ParseLimitParam parses a result-count limit, applying a default when the
// parameter is absent and clamping to maxLimit. Non-positive and malformed
// values are validation errors.
func ParseLimitParam(params url.Values, key string, defaultLimit, maxLimit int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return defaultLimit, fieldErrors
	}

	limit, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || limit <= 0 {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return defaultLimit, fieldErrors
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, fieldErrors
}

// NormalizeDepartmentCode pads a numeric DIVIPOLA department code to two
// digits ("5" and "05" identify the same department).
func NormalizeDepartmentCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	if len(code) == 1 {
		if _, err := strconv.Atoi(code); err == nil {
			return "0" + code
		}
	}
	return code
}
