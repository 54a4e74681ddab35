// Package memstore is an in-memory implementation of every storage port.
// It backs the unit test suite and closes the reserve race with a per-slot
// mutex: the counter increment and the ledger append happen under one lock,
// so no interleaving can observe current > max or a counter that diverges
// from the ledger.
package memstore

import (
	"context"
	"sync"
	"time"

	"bookmyslot/internal/domain/booking"
	"bookmyslot/internal/domain/event"
	"bookmyslot/internal/infra"

	"github.com/google/uuid"
)

type eventRecord struct {
	id          uuid.UUID
	title       string
	description string
	createdAt   time.Time
	slotIDs     []uuid.UUID
}

type slotRecord struct {
	// mu is the slot's serialization point; it guards the counter, the
	// slot-scoped ledger segment and the email index together.
	mu              sync.Mutex
	id              uuid.UUID
	eventID         uuid.UUID
	startTime       time.Time
	maxBookings     int32
	currentBookings int32
	bookings        []*booking.Booking
	byEmail         map[string]struct{}
}

type Store struct {
	// mu guards the maps only; it is never held across a slot lock for
	// longer than a lookup, so readers don't queue behind a reserve.
	mu           sync.RWMutex
	events       map[uuid.UUID]*eventRecord
	slots        map[uuid.UUID]*slotRecord
	bookingSlots map[uuid.UUID]uuid.UUID // booking ID -> slot ID
}

func New() *Store {
	return &Store{
		events:       make(map[uuid.UUID]*eventRecord),
		slots:        make(map[uuid.UUID]*slotRecord),
		bookingSlots: make(map[uuid.UUID]uuid.UUID),
	}
}

// Create persists the event and its slots; all or nothing.
func (s *Store) Create(_ context.Context, e *event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[e.ID()]; exists {
		return infra.WrapRepoErr("event already exists", nil, infra.KindDuplicateKey)
	}

	slotIDs := make([]uuid.UUID, len(e.Slots()))
	for i, slot := range e.Slots() {
		slotIDs[i] = slot.ID()
	}

	s.events[e.ID()] = &eventRecord{
		id:          e.ID(),
		title:       e.Title(),
		description: e.Description(),
		createdAt:   e.CreatedAt(),
		slotIDs:     slotIDs,
	}

	for _, slot := range e.Slots() {
		s.slots[slot.ID()] = &slotRecord{
			id:          slot.ID(),
			eventID:     slot.EventID(),
			startTime:   slot.StartTime(),
			maxBookings: slot.MaxBookings(),
			byEmail:     make(map[string]struct{}),
		}
	}

	return nil
}

func (s *Store) SlotByID(_ context.Context, id uuid.UUID) (*event.Slot, error) {
	s.mu.RLock()
	rec, ok := s.slots[id]
	s.mu.RUnlock()
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return event.ReconstructSlot(rec.id, rec.eventID, rec.startTime, rec.maxBookings, rec.currentBookings), nil
}

// Reserve is the atomic unit: capacity check, counter increment and ledger
// append all happen under the slot's mutex. A failure leaves both exactly
// as before.
func (s *Store) Reserve(_ context.Context, b *booking.Booking) error {
	s.mu.RLock()
	rec, ok := s.slots[b.SlotID()]
	s.mu.RUnlock()
	if !ok {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	rec.mu.Lock()
	if _, dup := rec.byEmail[b.UserEmail()]; dup {
		rec.mu.Unlock()
		return infra.WrapRepoErr("user already booked this slot", nil, infra.KindDuplicateKey)
	}
	if rec.currentBookings >= rec.maxBookings {
		rec.mu.Unlock()
		return infra.WrapRepoErr("no remaining capacity", nil, infra.KindConflict)
	}

	rec.currentBookings++
	rec.bookings = append(rec.bookings, b)
	rec.byEmail[b.UserEmail()] = struct{}{}
	rec.mu.Unlock()

	// Lock order is store.mu before slot.mu everywhere else, so the ID
	// index is written after the slot lock is released. The ID is not
	// observable by other callers until Reserve returns.
	s.mu.Lock()
	s.bookingSlots[b.ID()] = b.SlotID()
	s.mu.Unlock()

	return nil
}

func (s *Store) assembleEvent(rec *eventRecord) *event.Event {
	slots := make([]*event.Slot, len(rec.slotIDs))
	for i, slotID := range rec.slotIDs {
		sr := s.slots[slotID]
		sr.mu.Lock()
		slots[i] = event.ReconstructSlot(sr.id, sr.eventID, sr.startTime, sr.maxBookings, sr.currentBookings)
		sr.mu.Unlock()
	}
	return event.ReconstructEvent(rec.id, rec.title, rec.description, rec.createdAt, slots)
}
