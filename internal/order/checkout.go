package order

import (
	"context"
	"time"

	"shopzone/internal/cart"
	"shopzone/internal/catalog"
	"shopzone/internal/logger"
	"shopzone/internal/utils"

	"go.uber.org/zap"
)

// CheckoutForm is what the order screen collects before submission.
type CheckoutForm struct {
	FullName         string
	Email            string
	Phone            string
	Subscribe        bool
	DeliveryAddress  string
	DeliveryDate     time.Time
	DeliveryInterval string
	Comment          string
}

// Totals is the price breakdown shown next to the form.
type Totals struct {
	Goods    float64
	Delivery int
	Total    float64
}

// productSource resolves cart ids to products; satisfied by *catalog.Engine.
type productSource interface {
	Product(ctx context.Context, id catalog.ProductID) *catalog.Product
}

// orderCreator is the slice of the gateway checkout needs.
type orderCreator interface {
	Create(ctx context.Context, input Input) (*Order, error)
}

// Checkout drives the order submission flow over the cart, the catalog and
// the orders gateway.
type Checkout struct {
	cart    *cart.Store
	catalog productSource
	gateway orderCreator
}

func NewCheckout(cartStore *cart.Store, source productSource, gateway orderCreator) *Checkout {
	return &Checkout{cart: cartStore, catalog: source, gateway: gateway}
}

// Items resolves the cart to product records. Ids that no longer resolve are
// skipped, matching the legacy cart screen that simply did not render them.
func (c *Checkout) Items(ctx context.Context) []catalog.Product {
	ids := c.cart.IDs()
	items := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		p := c.catalog.Product(ctx, id)
		if p == nil {
			logger.FromCtx(ctx).Warn("cart id no longer resolves, skipping",
				zap.String("product_id", id.String()),
			)
			continue
		}
		items = append(items, *p)
	}
	return items
}

// ComputeTotals prices the cart contents plus the selected delivery slot.
// Goods are summed at effective price.
func ComputeTotals(items []catalog.Product, date time.Time, interval string) Totals {
	var goods float64
	for _, p := range items {
		goods += p.EffectivePrice()
	}

	delivery := DeliveryCost(date, interval)
	return Totals{
		Goods:    goods,
		Delivery: delivery,
		Total:    goods + float64(delivery),
	}
}

// Submit sends the order and clears the cart only after the endpoint
// accepted it. A failed write leaves the cart untouched and is surfaced to
// the caller, never retried here.
func (c *Checkout) Submit(ctx context.Context, form CheckoutForm) (*Order, error) {
	ids := c.cart.IDs()
	if len(ids) == 0 {
		return nil, ErrEmptyCart
	}

	subscribe := 0
	if form.Subscribe {
		subscribe = 1
	}

	input := Input{
		FullName:         form.FullName,
		Email:            form.Email,
		Phone:            utils.NormalizePhone(form.Phone),
		Subscribe:        subscribe,
		DeliveryAddress:  form.DeliveryAddress,
		DeliveryDate:     FormatDeliveryDate(form.DeliveryDate),
		DeliveryInterval: form.DeliveryInterval,
		Comment:          form.Comment,
		GoodIDs:          ids,
	}

	created, err := c.gateway.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := c.cart.Clear(); err != nil {
		logger.FromCtx(ctx).Warn("order accepted but cart failed to clear",
			zap.Int("order_id", created.ID),
			zap.Error(err),
		)
	}

	return created, nil
}
