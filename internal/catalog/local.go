package catalog

import "sort"

// LocalIndex is the in-memory static product source. It is read-only after
// construction; queries never mutate it.
type LocalIndex struct {
	products []Product
}

func NewLocalIndex(products []Product) *LocalIndex {
	items := make([]Product, len(products))
	copy(items, products)
	return &LocalIndex{products: items}
}

// NewPhoneIndex builds the index over the built-in phone dataset.
func NewPhoneIndex() *LocalIndex {
	return NewLocalIndex(phoneData)
}

func (idx *LocalIndex) Len() int {
	return len(idx.products)
}

// Get returns the product with the given id, or ErrProductNotFound.
func (idx *LocalIndex) Get(id ProductID) (*Product, error) {
	for _, p := range idx.products {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, ErrProductNotFound
}

// Query filters, sorts and paginates the static set. TotalCount always
// reflects the filtered set, independent of the requested page.
func (idx *LocalIndex) Query(req PageRequest) *PageResult {
	filtered := make([]Product, 0, len(idx.products))
	for _, p := range idx.products {
		if req.Filters.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, req.Sort)

	return &PageResult{
		Items: paginate(filtered, req.Page, req.PerPage),
		Pagination: &Pagination{
			CurrentPage: req.Page,
			PerPage:     req.PerPage,
			TotalCount:  len(filtered),
		},
	}
}

// Categories lists the distinct main categories in the set, sorted.
func (idx *LocalIndex) Categories() []string {
	seen := make(map[string]struct{})
	for _, p := range idx.products {
		if p.MainCategory != "" {
			seen[p.MainCategory] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
