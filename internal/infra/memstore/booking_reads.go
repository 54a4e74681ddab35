package memstore

import (
	"context"
	"sort"

	"bookmyslot/internal/domain/booking"
	"bookmyslot/internal/infra"
	"bookmyslot/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingReadStore performs the display join (slot start, event title and
// description) on the read path; nothing is stored twice.
type BookingReadStore struct {
	store *Store
}

func NewBookingReadStore(store *Store) *BookingReadStore {
	return &BookingReadStore{store: store}
}

func (r *BookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	slotID, ok := r.store.bookingSlots[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	rec := r.store.slots[slotID]
	rec.mu.Lock()
	defer rec.mu.Unlock()
	for _, b := range rec.bookings {
		if b.ID() == id {
			return r.toView(b, rec), nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *BookingReadStore) FindByUserEmail(_ context.Context, email string) ([]*queries.BookingView, error) {
	return r.collect(func(b *booking.Booking) bool {
		return b.UserEmail() == email
	})
}

func (r *BookingReadStore) FindAll(_ context.Context) ([]*queries.BookingView, error) {
	return r.collect(func(*booking.Booking) bool {
		return true
	})
}

func (r *BookingReadStore) collect(match func(*booking.Booking) bool) ([]*queries.BookingView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	views := make([]*queries.BookingView, 0)
	for _, rec := range r.store.slots {
		rec.mu.Lock()
		for _, b := range rec.bookings {
			if match(b) {
				views = append(views, r.toView(b, rec))
			}
		}
		rec.mu.Unlock()
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].BookedAt.Before(views[j].BookedAt)
	})
	return views, nil
}

// toView joins the booking with its slot and owning event. Callers hold
// store.mu (read) and the slot's mutex.
func (r *BookingReadStore) toView(b *booking.Booking, rec *slotRecord) *queries.BookingView {
	ev := r.store.events[rec.eventID]

	var description *string
	if ev.description != "" {
		d := ev.description
		description = &d
	}

	return &queries.BookingView{
		ID:               b.ID(),
		SlotID:           b.SlotID(),
		EventID:          rec.eventID,
		UserName:         b.UserName(),
		UserEmail:        b.UserEmail(),
		BookedAt:         b.BookedAt(),
		EventTitle:       ev.title,
		EventDescription: description,
		SlotStartTime:    rec.startTime,
	}
}
