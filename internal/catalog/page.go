package catalog

// PageRequest describes one catalog query. Page is 1-based and is not
// validated against the result bounds; an out-of-range page yields an empty
// item list, never an error.
type PageRequest struct {
	Page    int
	PerPage int
	Sort    SortKey
	Filters FilterSet
}

type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalCount  int `json:"total_count"`
}

// PageResult is the engine's contract: the page slice plus metadata about
// the filtered (not the unfiltered) set. Pagination is nil when a degraded
// remote response carried none.
type PageResult struct {
	Items      []Product   `json:"goods"`
	Pagination *Pagination `json:"_pagination,omitempty"`
}

// TotalPages derives the page count for a per-page size, zero when no
// pagination metadata is available.
func (r *PageResult) TotalPages() int {
	if r.Pagination == nil || r.Pagination.PerPage <= 0 {
		return 0
	}
	return (r.Pagination.TotalCount + r.Pagination.PerPage - 1) / r.Pagination.PerPage
}

// paginate slices the filtered-and-sorted sequence to the requested window,
// clipping to the available length.
func paginate(items []Product, page, perPage int) []Product {
	start := (page - 1) * perPage
	if start >= len(items) || start < 0 {
		return []Product{}
	}

	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
