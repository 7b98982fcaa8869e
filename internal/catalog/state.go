package catalog

import (
	"encoding/json"

	"shopzone/internal/logger"
	"shopzone/internal/storage"

	"go.uber.org/zap"
)

const stateKey = "filters"

// QueryState is the caller-owned view state of the catalog screen. The
// engine never holds it; the store only serializes it at the boundary.
type QueryState struct {
	Sort    SortKey   `json:"sort"`
	Filters FilterSet `json:"filters"`
	Page    int       `json:"page"`
}

// DefaultQueryState is the reset position: first page, no constraints.
func DefaultQueryState() QueryState {
	return QueryState{Page: 1}
}

// StateStore saves and restores the query state between visits.
type StateStore struct {
	store storage.Storage
}

func NewStateStore(store storage.Storage) *StateStore {
	return &StateStore{store: store}
}

func (s *StateStore) Save(state QueryState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.store.Set(stateKey, raw)
}

// Restore returns the persisted state, or the defaults when nothing was
// saved or the saved blob fails to parse. A parse failure is logged and
// treated as absent state.
func (s *StateStore) Restore() QueryState {
	raw, ok := s.store.Get(stateKey)
	if !ok {
		return DefaultQueryState()
	}

	var state QueryState
	if err := json.Unmarshal(raw, &state); err != nil {
		logger.L().Warn("saved filters are corrupt, using defaults", zap.Error(err))
		return DefaultQueryState()
	}

	if state.Page <= 0 {
		state.Page = 1
	}
	if !state.Sort.Valid() {
		state.Sort = SortNone
	}
	return state
}

func (s *StateStore) Reset() error {
	return s.store.Delete(stateKey)
}
