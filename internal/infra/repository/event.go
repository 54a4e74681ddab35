package repository

import (
	"context"

	"bookmyslot/internal/domain/event"
	"bookmyslot/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// Create persists the event and all of its slots in one transaction.
func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	err := runInTx(ctx, r.pool, func(tx pgx.Tx) error {
		const insertEvent = `
INSERT INTO events (id, title, description, created_at)
VALUES ($1, $2, $3, $4)`

		if _, err := tx.Exec(ctx, insertEvent, e.ID(), e.Title(), e.Description(), e.CreatedAt()); err != nil {
			return err
		}

		const insertSlot = `
INSERT INTO time_slots (id, event_id, start_time, max_bookings, current_bookings)
VALUES ($1, $2, $3, $4, $5)`

		for _, slot := range e.Slots() {
			if _, err := tx.Exec(ctx, insertSlot,
				slot.ID(), slot.EventID(), slot.StartTime(), slot.MaxBookings(), slot.CurrentBookings(),
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("event already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create event", err)
	}
	return nil
}
