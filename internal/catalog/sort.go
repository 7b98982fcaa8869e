package catalog

import "sort"

// SortKey selects the ordering of a catalog page. The empty key keeps the
// source order.
type SortKey string

const (
	SortNone       SortKey = ""
	SortRatingAsc  SortKey = "rating_asc"
	SortRatingDesc SortKey = "rating_desc"
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
)

// Valid reports whether the key is one the engine and the goods API accept.
func (k SortKey) Valid() bool {
	switch k {
	case SortNone, SortRatingAsc, SortRatingDesc, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// sortProducts orders items in place. The sort is stable: ties keep their
// original relative position.
func sortProducts(items []Product, key SortKey) {
	var less func(a, b Product) bool

	switch key {
	case SortRatingAsc:
		less = func(a, b Product) bool { return a.Rating < b.Rating }
	case SortRatingDesc:
		less = func(a, b Product) bool { return a.Rating > b.Rating }
	case SortPriceAsc:
		less = func(a, b Product) bool { return a.EffectivePrice() < b.EffectivePrice() }
	case SortPriceDesc:
		less = func(a, b Product) bool { return a.EffectivePrice() > b.EffectivePrice() }
	default:
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}
