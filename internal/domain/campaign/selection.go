package campaign

import (
	"sort"
	"strings"
)

// Selection is the vendor filter applied to every query operation.  It is
// either the all-vendors sentinel or an explicit set, where the empty set
// means "show nothing".  Queries receive a Selection explicitly on every
// call; the core never reads filter state from ambient scope, which keeps
// every operation pure and independently testable.
//
// The zero value selects nothing.
type Selection struct {
	all     bool
	vendors map[string]struct{}
}

// SelectAll returns the all-vendors sentinel selection.
func SelectAll() Selection {
	return Selection{all: true}
}

// SelectNone returns the explicit empty selection.
func SelectNone() Selection {
	return Selection{}
}

// SelectVendors returns an explicit selection of the given vendors.  Blank
// names are ignored; no names at all yields SelectNone.
func SelectVendors(names ...string) Selection {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			set[n] = struct{}{}
		}
	}
	if len(set) == 0 {
		return Selection{}
	}
	return Selection{vendors: set}
}

// IsAll reports whether the selection is the all-vendors sentinel.
func (s Selection) IsAll() bool {
	return s.all
}

// Contains reports whether the vendor passes the selection filter.
func (s Selection) Contains(vendor string) bool {
	if s.all {
		return true
	}
	_, ok := s.vendors[vendor]
	return ok
}

// Key returns a deterministic string form of the selection, suitable for
// cache keys and log fields: "all", "none", or the sorted vendor names
// joined with commas.
func (s Selection) Key() string {
	if s.all {
		return "all"
	}
	if len(s.vendors) == 0 {
		return "none"
	}
	names := make([]string, 0, len(s.vendors))
	for n := range s.vendors {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
