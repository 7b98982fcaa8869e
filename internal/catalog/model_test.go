package catalog

import (
	"encoding/json"
	"testing"

	"shopzone/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectivePrice(t *testing.T) {
	t.Run("Discount below base", func(t *testing.T) {
		p := Product{ActualPrice: 1000, DiscountPrice: utils.Float64Ptr(800)}
		assert.True(t, p.HasDiscount())
		assert.Equal(t, 800.0, p.EffectivePrice())
	})

	t.Run("Discount at or above base is ignored", func(t *testing.T) {
		p := Product{ActualPrice: 1000, DiscountPrice: utils.Float64Ptr(1200)}
		assert.False(t, p.HasDiscount())
		assert.Equal(t, 1000.0, p.EffectivePrice())

		p.DiscountPrice = utils.Float64Ptr(1000)
		assert.False(t, p.HasDiscount())
		assert.Equal(t, 1000.0, p.EffectivePrice())
	})

	t.Run("No discount", func(t *testing.T) {
		p := Product{ActualPrice: 500}
		assert.False(t, p.HasDiscount())
		assert.Equal(t, 500.0, p.EffectivePrice())
	})
}

func TestDiscountPercent(t *testing.T) {
	p := Product{ActualPrice: 1000, DiscountPrice: utils.Float64Ptr(800)}
	assert.Equal(t, 20, p.DiscountPercent())

	p = Product{ActualPrice: 119990, DiscountPrice: utils.Float64Ptr(109990)}
	assert.Equal(t, 8, p.DiscountPercent())

	p = Product{ActualPrice: 1000}
	assert.Equal(t, 0, p.DiscountPercent())
}

func TestProductIDUnmarshal(t *testing.T) {
	t.Run("Numeric id", func(t *testing.T) {
		var p Product
		require.NoError(t, json.Unmarshal([]byte(`{"id": 42, "name": "x"}`), &p))
		assert.Equal(t, ProductID("42"), p.ID)
	})

	t.Run("String id", func(t *testing.T) {
		var p Product
		require.NoError(t, json.Unmarshal([]byte(`{"id": "042", "name": "x"}`), &p))
		assert.Equal(t, ProductID("42"), p.ID)
	})

	t.Run("Non-numeric string id", func(t *testing.T) {
		var p Product
		require.NoError(t, json.Unmarshal([]byte(`{"id": "sku-9", "name": "x"}`), &p))
		assert.Equal(t, ProductID("sku-9"), p.ID)
	})
}

func TestParseProductID(t *testing.T) {
	assert.Equal(t, ProductID("7"), ParseProductID("007"))
	assert.Equal(t, ParseProductID("7"), ParseProductID(" 7"))
}
