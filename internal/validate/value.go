package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// number extracts a strict JSON number. encoding/json decodes every JSON
// number into float64, so any other dynamic type means the client sent a
// string, bool, array or null.
func number(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func isIntegral(f float64) bool {
	return f == math.Trunc(f)
}

// looseNumber parses permissively: JSON numbers and numeric strings are
// both accepted. Used by the booking validator, which historically took
// form-encoded values as strings.
func looseNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func looseInt(v any) (int, bool) {
	f, ok := looseNumber(v)
	if !ok || !isIntegral(f) {
		return 0, false
	}
	return int(f), true
}

// nonEmptyString returns the trimmed value; empty after trimming counts as
// absent.
func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// stringList accepts a JSON array whose elements are all strings. An empty
// array is valid; only the element type is checked, never the length.
func stringList(v any) ([]string, bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// present mirrors JavaScript truthiness for required-field checks: nil,
// empty/whitespace strings and zero numbers all count as missing.
func present(body map[string]any, key string) bool {
	v, ok := body[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) != ""
	case float64:
		return t != 0
	case bool:
		return t
	default:
		return true
	}
}

// defined reports only that the key was sent with a non-null value; zero
// is a legitimate amount for the monetary fields.
func defined(body map[string]any, key string) bool {
	v, ok := body[key]
	return ok && v != nil
}

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}
