package catalog

import (
	"encoding/json"
	"math"

	"shopzone/internal/utils"
)

// ProductID is a canonical string identifier. The goods API serves numeric
// ids while the persisted cart holds strings; both decode to the same value.
type ProductID string

func (id *ProductID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ProductID(utils.CanonicalID(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ProductID(utils.CanonicalID(n.String()))
	return nil
}

func (id ProductID) String() string { return string(id) }

// ParseProductID canonicalizes an identifier coming from user input or
// persisted state.
func ParseProductID(raw string) ProductID {
	return ProductID(utils.CanonicalID(raw))
}

type Product struct {
	ID            ProductID `json:"id"`
	Name          string    `json:"name"`
	MainCategory  string    `json:"main_category"`
	SubCategory   string    `json:"sub_category,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	ActualPrice   float64   `json:"actual_price"`
	DiscountPrice *float64  `json:"discount_price,omitempty"`
	Rating        float64   `json:"rating"`
	ImageURL      *string   `json:"image_url,omitempty"`
	Storage       string    `json:"storage,omitempty"`
	Color         string    `json:"color,omitempty"`
	OS            string    `json:"os,omitempty"`
}

// HasDiscount reports whether the discount price is present and strictly
// below the base price. A discount at or above the base price is ignored.
func (p Product) HasDiscount() bool {
	return p.DiscountPrice != nil && *p.DiscountPrice < p.ActualPrice
}

// EffectivePrice is the price the customer pays.
func (p Product) EffectivePrice() float64 {
	if p.HasDiscount() {
		return *p.DiscountPrice
	}
	return p.ActualPrice
}

// DiscountPercent is the rounded percentage shown on the discount badge,
// zero when no discount applies.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	return int(math.Round((1 - *p.DiscountPrice/p.ActualPrice) * 100))
}
