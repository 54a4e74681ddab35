package queries

import (
	"context"
	"time"

	"bookmyslot/internal/infra"
	"bookmyslot/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingView is the ledger entry enriched with display data joined from
// the owning slot and event on the read path; nothing here is stored
// redundantly.
type BookingView struct {
	ID               uuid.UUID `json:"id"`
	SlotID           uuid.UUID `json:"slot_id"`
	EventID          uuid.UUID `json:"event_id"`
	UserName         string    `json:"user_name"`
	UserEmail        string    `json:"user_email"`
	BookedAt         time.Time `json:"booked_at"`
	EventTitle       string    `json:"event_title"`
	EventDescription *string   `json:"event_description,omitempty"`
	SlotStartTime    time.Time `json:"slot_start_time"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// FindByUserEmail matches the email exactly; case folding is a
	// boundary decision, not made here.
	FindByUserEmail(ctx context.Context, email string) ([]*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUserEmail(ctx context.Context, email string) ([]*BookingView, error)
	// ListAll is a diagnostic surface only.
	ListAll(ctx context.Context) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUserEmail(ctx context.Context, email string) ([]*BookingView, error) {
	views, err := q.store.FindByUserEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
