package art

import "strings"

// Filter narrows a listing. A non-empty Name selects records whose name
// matches exactly, ignoring case; the price bounds are then ignored.
// Otherwise MinPrice keeps prices >= the bound and MaxPrice keeps
// prices <= the bound.
type Filter struct {
	Name     string
	MinPrice *float64
	MaxPrice *float64
}

// Active reports whether the filter excludes anything.
func (f Filter) Active() bool {
	return strings.TrimSpace(f.Name) != "" || f.MinPrice != nil || f.MaxPrice != nil
}

// Match reports whether rec passes the filter.
func (f Filter) Match(rec *Record) bool {
	if rec == nil {
		return false
	}
	if strings.TrimSpace(f.Name) != "" {
		return rec.NameMatches(f.Name)
	}
	if f.MinPrice != nil && rec.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && rec.Price > *f.MaxPrice {
		return false
	}
	return true
}
