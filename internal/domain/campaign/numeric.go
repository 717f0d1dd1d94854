package campaign

import (
	"math"
	"strconv"
	"strings"

	"github.com/reachlab/geodash/pkg/errors"
)

// ErrNotANumber is returned by ParseCount for values that carry no usable
// numeric content.  Aggregation callers treat it as "skip this row", never
// as zero.
var ErrNotANumber = errors.New(errors.ErrCodeNotANumber, "value is not a number")

// ParseCount normalizes a human-formatted count field into an integer.
// Source exports mix plain numbers with marked strings, so the accepted
// grammar is: optional ">" comparison prefix, optional "," thousands
// separators, optional "K" scale suffix applied to a float prefix.
//
//	"1.2K"   -> 1200
//	">500"   -> 500   (the "more than" qualifier collapses to the bound)
//	"1,234"  -> 1234
//	"N/A"    -> ErrNotANumber
//
// Values <= 0 parse successfully; whether they count as absent is the
// caller's policy.
func ParseCount(raw any) (int64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, ErrNotANumber
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrNotANumber
		}
		return int64(math.Trunc(v)), nil
	case string:
		return parseCountString(v)
	default:
		return 0, ErrNotANumber
	}
}

func parseCountString(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "n/a") {
		return 0, ErrNotANumber
	}

	s = strings.TrimSpace(strings.TrimPrefix(s, ">"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, ErrNotANumber
	}

	// Scale suffix: "1.2K" means 1.2 thousand.
	if last := s[len(s)-1]; last == 'K' || last == 'k' {
		f, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64)
		if err != nil {
			return 0, ErrNotANumber
		}
		return int64(math.Round(f * 1000)), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotANumber
	}
	return int64(math.Trunc(f)), nil
}
