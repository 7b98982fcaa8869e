package cart

import (
	"encoding/json"
	"fmt"

	"shopzone/internal/catalog"
	"shopzone/internal/logger"
	"shopzone/internal/storage"

	"go.uber.org/zap"
)

const cartKey = "cart"

// Store is the persisted cart: an insertion-ordered list of canonical
// product ids with no duplicates. Mutation happens synchronously from the
// caller's single event loop; the store itself keeps no cache, every call
// reads through to storage so concurrent screens see one truth.
type Store struct {
	store storage.Storage
}

func NewStore(store storage.Storage) *Store {
	return &Store{store: store}
}

// Add appends the id unless it is already present. Returns true when the id
// was newly added.
func (s *Store) Add(id catalog.ProductID) (bool, error) {
	ids := s.load()
	for _, existing := range ids {
		if existing == id {
			return false, nil
		}
	}

	ids = append(ids, id)
	if err := s.save(ids); err != nil {
		return false, err
	}
	return true, nil
}

// Remove drops the id. Removing an absent id is a no-op.
func (s *Store) Remove(id catalog.ProductID) error {
	ids := s.load()
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(ids) {
		return nil
	}
	return s.save(kept)
}

// Clear empties the cart.
func (s *Store) Clear() error {
	return s.store.Delete(cartKey)
}

// IDs returns the cart contents in insertion order.
func (s *Store) IDs() []catalog.ProductID {
	return s.load()
}

func (s *Store) Count() int {
	return len(s.load())
}

func (s *Store) Contains(id catalog.ProductID) bool {
	for _, existing := range s.load() {
		if existing == id {
			return true
		}
	}
	return false
}

func (s *Store) load() []catalog.ProductID {
	raw, ok := s.store.Get(cartKey)
	if !ok {
		return []catalog.ProductID{}
	}

	var stored []string
	if err := json.Unmarshal(raw, &stored); err != nil {
		logger.L().Warn("stored cart is corrupt, resetting", zap.Error(err))
		return []catalog.ProductID{}
	}

	ids := make([]catalog.ProductID, 0, len(stored))
	seen := make(map[catalog.ProductID]struct{}, len(stored))
	for _, rawID := range stored {
		id := catalog.ParseProductID(rawID)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) save(ids []catalog.ProductID) error {
	stored := make([]string, len(ids))
	for i, id := range ids {
		stored[i] = id.String()
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.store.Set(cartKey, raw)
}
