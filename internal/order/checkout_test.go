package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopzone/internal/cart"
	"shopzone/internal/catalog"
	"shopzone/internal/storage"
	"shopzone/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	products map[catalog.ProductID]catalog.Product
}

func (f *fakeSource) Product(_ context.Context, id catalog.ProductID) *catalog.Product {
	p, ok := f.products[id]
	if !ok {
		return nil
	}
	return &p
}

type MockCreator struct {
	mock.Mock
}

func (m *MockCreator) Create(ctx context.Context, input Input) (*Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func testSource() *fakeSource {
	return &fakeSource{products: map[catalog.ProductID]catalog.Product{
		"1": {ID: "1", Name: "Phone", ActualPrice: 1000, DiscountPrice: utils.Float64Ptr(800)},
		"2": {ID: "2", Name: "Case", ActualPrice: 500},
	}}
}

func TestComputeTotals(t *testing.T) {
	items := []catalog.Product{
		{ActualPrice: 1000, DiscountPrice: utils.Float64Ptr(800)},
		{ActualPrice: 500},
	}
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	totals := ComputeTotals(items, monday, EveningInterval)
	assert.Equal(t, 1300.0, totals.Goods)
	assert.Equal(t, 400, totals.Delivery)
	assert.Equal(t, 1700.0, totals.Total)

	empty := ComputeTotals(nil, monday, "08:00-12:00")
	assert.Equal(t, 0.0, empty.Goods)
	assert.Equal(t, 200, empty.Delivery)
}

func TestCheckoutItems(t *testing.T) {
	store := cart.NewStore(storage.NewMemStore())
	for _, id := range []catalog.ProductID{"1", "404", "2"} {
		_, err := store.Add(id)
		require.NoError(t, err)
	}

	c := NewCheckout(store, testSource(), &MockCreator{})
	items := c.Items(context.Background())

	// unresolvable id 404 is skipped, order preserved
	require.Len(t, items, 2)
	assert.Equal(t, "Phone", items[0].Name)
	assert.Equal(t, "Case", items[1].Name)
}

func TestCheckoutSubmit(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	form := CheckoutForm{
		FullName:         "Ivan Petrov",
		Email:            "ivan@example.com",
		Phone:            "8 (916) 123-45-67",
		Subscribe:        true,
		DeliveryAddress:  "Moscow, Tverskaya 1",
		DeliveryDate:     date,
		DeliveryInterval: "08:00-12:00",
		Comment:          "call ahead",
	}

	t.Run("Empty cart is rejected before any network call", func(t *testing.T) {
		creator := new(MockCreator)
		c := NewCheckout(cart.NewStore(storage.NewMemStore()), testSource(), creator)

		_, err := c.Submit(ctx, form)
		assert.ErrorIs(t, err, ErrEmptyCart)
		creator.AssertNotCalled(t, "Create")
	})

	t.Run("Success clears the cart", func(t *testing.T) {
		store := cart.NewStore(storage.NewMemStore())
		_, err := store.Add("1")
		require.NoError(t, err)
		_, err = store.Add("2")
		require.NoError(t, err)

		creator := new(MockCreator)
		creator.On("Create", mock.Anything, mock.MatchedBy(func(input Input) bool {
			return input.Phone == "+79161234567" &&
				input.Subscribe == 1 &&
				input.DeliveryDate == "05.09.2026" &&
				assert.ObjectsAreEqual([]catalog.ProductID{"1", "2"}, input.GoodIDs)
		})).Return(&Order{ID: 77}, nil)

		c := NewCheckout(store, testSource(), creator)

		created, err := c.Submit(ctx, form)
		require.NoError(t, err)
		assert.Equal(t, 77, created.ID)
		assert.Zero(t, store.Count())

		creator.AssertExpectations(t)
	})

	t.Run("Write failure keeps the cart", func(t *testing.T) {
		store := cart.NewStore(storage.NewMemStore())
		_, err := store.Add("1")
		require.NoError(t, err)

		creator := new(MockCreator)
		creator.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		c := NewCheckout(store, testSource(), creator)

		_, err = c.Submit(ctx, form)
		assert.Error(t, err)
		assert.Equal(t, 1, store.Count())
	})
}
