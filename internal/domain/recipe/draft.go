package recipe

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Draft is one untrusted recipe object as decoded from model output.
// Any field may be missing or of the wrong type; accessors never panic.
type Draft map[string]any

// Text returns the trimmed string value of key, or ""
func (d Draft) Text(key string) string {
	s, _ := d[key].(string)
	return strings.TrimSpace(s)
}

// PositiveInt returns the value of key rounded to an int when it is a
// positive number or a string starting with one ("25 minutes")
func (d Draft) PositiveInt(key string) (int, bool) {
	f, ok := ParseNumber(d[key])
	if !ok {
		return 0, false
	}
	n := int(math.Round(f))
	if n <= 0 {
		return 0, false
	}
	return n, true
}

// List returns the value of key when it is an array
func (d Draft) List(key string) []any {
	l, _ := d[key].([]any)
	return l
}

// AsDraft returns v as a Draft when it is a JSON object
func AsDraft(v any) (Draft, bool) {
	switch m := v.(type) {
	case map[string]any:
		return Draft(m), true
	case Draft:
		return m, true
	}
	return nil, false
}

// ParseNumber accepts JSON numbers and strings with a leading number,
// including simple fractions such as "1/2"
func ParseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		return parseLeadingNumber(n)
	}
	return 0, false
}

func parseLeadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.' || s[end] == '/') {
		end++
	}
	token := strings.Trim(s[:end], "./")
	if token == "" {
		return 0, false
	}
	if num, den, ok := strings.Cut(token, "/"); ok {
		a, err1 := strconv.ParseFloat(num, 64)
		b, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || b == 0 {
			return 0, false
		}
		return a / b, true
	}
	f, err := strconv.ParseFloat(token, 64)
	return f, err == nil
}
