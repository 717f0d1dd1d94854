// Package tabular defines the generic row shape produced by dataset decoding
// and consumed by the domain normalizers.  Source files use inconsistent
// header names across exports, so every logical field is resolved through an
// ordered list of candidate keys rather than a single fixed name.
package tabular

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one decoded record keyed by column header.  Values are strings when
// decoded from CSV and may be numbers when decoded from JSON.
type Row map[string]any

// Lookup returns the value of the first candidate key that is present and
// non-blank.  A value is blank when it is nil or a string that trims to "".
func (r Row) Lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// Text resolves the first non-blank candidate key and renders its value as a
// trimmed string.  Numeric values render without an exponent or trailing
// zeros, so a column that a decoder typed as 12345.0 still reads "12345".
// Returns "" when no candidate matches.
func (r Row) Text(keys ...string) string {
	v, ok := r.Lookup(keys...)
	if !ok {
		return ""
	}
	return Stringify(v)
}

// Stringify renders a cell value as a trimmed string.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
