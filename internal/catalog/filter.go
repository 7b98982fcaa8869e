package catalog

import "strings"

// Source tells the engine where a query may be answered.
type Source string

const (
	SourceAuto   Source = "auto"
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// FilterSet is the conjunction of optional predicates on a catalog query.
// A nil/zero field means "no constraint".
type FilterSet struct {
	Category     string   `json:"category,omitempty"`
	MinPrice     *float64 `json:"minPrice,omitempty"`
	MaxPrice     *float64 `json:"maxPrice,omitempty"`
	DiscountOnly bool     `json:"discountOnly,omitempty"`
	Query        string   `json:"query,omitempty"`
	SourceHint   Source   `json:"sourceHint,omitempty"`
}

// Matches applies the predicates in a fixed order: free-text, category,
// min price, max price, discount-only. The predicates commute; the order is
// fixed only so instrumentation sees a deterministic sequence.
func (f FilterSet) Matches(p Product) bool {
	if f.Query != "" && !matchesQuery(p, f.Query) {
		return false
	}
	if f.Category != "" && p.MainCategory != f.Category {
		return false
	}
	if f.MinPrice != nil && p.EffectivePrice() < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.EffectivePrice() > *f.MaxPrice {
		return false
	}
	if f.DiscountOnly && !p.HasDiscount() {
		return false
	}
	return true
}

// matchesQuery is a case-insensitive substring match over the descriptive
// fields the legacy search reached: name, brand, category, color and OS.
func matchesQuery(p Product, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{p.Name, p.Brand, p.MainCategory, p.Color, p.OS} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
