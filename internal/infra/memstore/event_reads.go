package memstore

import (
	"context"
	"sort"

	"bookmyslot/internal/domain/event"
	"bookmyslot/internal/infra"

	"github.com/google/uuid"
)

// EventReadStore serves the read side from the same records the command
// side mutates; there is nothing to go stale.
type EventReadStore struct {
	store *Store
}

func NewEventReadStore(store *Store) *EventReadStore {
	return &EventReadStore{store: store}
}

func (r *EventReadStore) FindByID(_ context.Context, id uuid.UUID) (*event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.events[id]
	if !ok {
		return nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return r.store.assembleEvent(rec), nil
}

func (r *EventReadStore) FindAll(_ context.Context) ([]*event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := make([]*event.Event, 0, len(r.store.events))
	for _, rec := range r.store.events {
		events = append(events, r.store.assembleEvent(rec))
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt().Before(events[j].CreatedAt())
	})
	return events, nil
}
