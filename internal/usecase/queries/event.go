package queries

import (
	"context"
	"time"

	"bookmyslot/internal/domain/event"
	"bookmyslot/internal/infra"
	"bookmyslot/internal/pkg/clock"
	"bookmyslot/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Derived fields (status, availability)
// are computed here at the query clock's now, never stored.
type SlotView struct {
	ID              uuid.UUID `json:"id"`
	EventID         uuid.UUID `json:"event_id"`
	StartTime       time.Time `json:"start_time"`
	MaxBookings     int32     `json:"max_bookings"`
	CurrentBookings int32     `json:"current_bookings"`
	Available       int32     `json:"available"`
	Status          string    `json:"status"`
}

type EventView struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	TotalSlots     int        `json:"total_slots"`
	AvailableSlots int32      `json:"available_slots"`
	IsPast         bool       `json:"is_past"`
	Slots          []SlotView `json:"slots"`
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	FindAll(ctx context.Context) ([]*event.Event, error)
}

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	List(ctx context.Context) ([]*EventView, error)
}

type eventQueriesImpl struct {
	store EventReadStore
	clock clock.Clock
}

func NewEventQueries(store EventReadStore, clock clock.Clock) EventQueries {
	return &eventQueriesImpl{store: store, clock: clock}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	e, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEventNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return ToEventView(e, q.clock.Now()), nil
}

func (q *eventQueriesImpl) List(ctx context.Context) ([]*EventView, error) {
	events, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*EventView, len(events))
	for i, e := range events {
		views[i] = ToEventView(e, q.clock.Now())
	}
	return views, nil
}

// ToEventView projects an event and its slots into the read model at the
// given instant.
func ToEventView(e *event.Event, now time.Time) *EventView {
	slots := make([]SlotView, len(e.Slots()))
	for i, s := range e.Slots() {
		slots[i] = SlotView{
			ID:              s.ID(),
			EventID:         s.EventID(),
			StartTime:       s.StartTime(),
			MaxBookings:     s.MaxBookings(),
			CurrentBookings: s.CurrentBookings(),
			Available:       s.Available(),
			Status:          s.StatusAt(now).String(),
		}
	}

	var description *string
	if d := e.Description(); d != "" {
		description = &d
	}

	return &EventView{
		ID:             e.ID(),
		Title:          e.Title(),
		Description:    description,
		CreatedAt:      e.CreatedAt(),
		TotalSlots:     e.TotalSlots(),
		AvailableSlots: e.AvailableSlots(),
		IsPast:         e.IsPastAt(now),
		Slots:          slots,
	}
}
