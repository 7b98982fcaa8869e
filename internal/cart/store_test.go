package cart

import (
	"testing"

	"shopzone/internal/catalog"
	"shopzone/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAdd(t *testing.T) {
	s := NewStore(storage.NewMemStore())

	t.Run("First add succeeds", func(t *testing.T) {
		added, err := s.Add("7")
		require.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, 1, s.Count())
	})

	t.Run("Second add of the same id is rejected", func(t *testing.T) {
		added, err := s.Add("7")
		require.NoError(t, err)
		assert.False(t, added)
		assert.Equal(t, 1, s.Count())
	})

	t.Run("Numeric and string renderings are the same id", func(t *testing.T) {
		added, err := s.Add(catalog.ParseProductID("007"))
		require.NoError(t, err)
		assert.False(t, added)
		assert.Equal(t, 1, s.Count())
	})

	t.Run("Insertion order is preserved", func(t *testing.T) {
		_, err := s.Add("3")
		require.NoError(t, err)
		_, err = s.Add("1")
		require.NoError(t, err)

		assert.Equal(t, []catalog.ProductID{"7", "3", "1"}, s.IDs())
	})
}

func TestStoreRemove(t *testing.T) {
	s := NewStore(storage.NewMemStore())
	for _, id := range []catalog.ProductID{"1", "2", "3"} {
		_, err := s.Add(id)
		require.NoError(t, err)
	}

	require.NoError(t, s.Remove("2"))
	assert.Equal(t, []catalog.ProductID{"1", "3"}, s.IDs())

	// removing an absent id is a no-op
	require.NoError(t, s.Remove("42"))
	assert.Equal(t, 2, s.Count())
}

func TestStoreClear(t *testing.T) {
	s := NewStore(storage.NewMemStore())
	_, err := s.Add("1")
	require.NoError(t, err)

	require.NoError(t, s.Clear())
	assert.Zero(t, s.Count())
	assert.Empty(t, s.IDs())
}

func TestStoreContains(t *testing.T) {
	s := NewStore(storage.NewMemStore())
	_, err := s.Add("5")
	require.NoError(t, err)

	assert.True(t, s.Contains("5"))
	assert.False(t, s.Contains("6"))
}

func TestStoreCorruptState(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Set("cart", []byte("[broken")))

	s := NewStore(store)
	assert.Zero(t, s.Count())

	// cart recovers to a usable empty state
	added, err := s.Add("9")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []catalog.ProductID{"9"}, s.IDs())
}

func TestStorePersistsAcrossInstances(t *testing.T) {
	store := storage.NewMemStore()

	first := NewStore(store)
	_, err := first.Add("11")
	require.NoError(t, err)

	second := NewStore(store)
	assert.Equal(t, []catalog.ProductID{"11"}, second.IDs())
}

func TestStoreDeduplicatesStoredState(t *testing.T) {
	store := storage.NewMemStore()
	// legacy state written before canonicalization
	require.NoError(t, store.Set("cart", []byte(`["7", "007", "3"]`)))

	s := NewStore(store)
	assert.Equal(t, []catalog.ProductID{"7", "3"}, s.IDs())
}
