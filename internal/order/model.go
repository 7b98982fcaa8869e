package order

import "shopzone/internal/catalog"

// Input is the order submission payload in the wire shape the orders
// endpoint expects. DeliveryDate is already formatted DD.MM.YYYY and
// Subscribe is the endpoint's 0/1 flag.
type Input struct {
	FullName         string              `json:"full_name"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	Subscribe        int                 `json:"subscribe"`
	DeliveryAddress  string              `json:"delivery_address"`
	DeliveryDate     string              `json:"delivery_date"`
	DeliveryInterval string              `json:"delivery_interval"`
	Comment          string              `json:"comment"`
	GoodIDs          []catalog.ProductID `json:"good_ids"`
}

// Order is the server-side record handed back by the orders endpoint.
type Order struct {
	ID               int                 `json:"id"`
	FullName         string              `json:"full_name"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	Subscribe        int                 `json:"subscribe"`
	DeliveryAddress  string              `json:"delivery_address"`
	DeliveryDate     string              `json:"delivery_date"`
	DeliveryInterval string              `json:"delivery_interval"`
	Comment          string              `json:"comment"`
	GoodIDs          []catalog.ProductID `json:"good_ids"`
	CreatedAt        string              `json:"created_at,omitempty"`
	UpdatedAt        string              `json:"updated_at,omitempty"`
}
