package repository

import (
	"context"
	"errors"
	"time"

	"bookmyslot/internal/domain/booking"
	"bookmyslot/internal/domain/event"
	"bookmyslot/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) SlotByID(ctx context.Context, id uuid.UUID) (*event.Slot, error) {
	const query = `
SELECT id, event_id, start_time, max_bookings, current_bookings
FROM time_slots
WHERE id = $1`

	var (
		slotID, eventID              uuid.UUID
		startTime                    time.Time
		maxBookings, currentBookings int32
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(&slotID, &eventID, &startTime, &maxBookings, &currentBookings)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	return event.ReconstructSlot(slotID, eventID, startTime.UTC(), maxBookings, currentBookings), nil
}

// Reserve increments the slot counter and appends the booking in one
// transaction. The conditional UPDATE is the serialization point: of two
// concurrent calls racing for the last unit, exactly one sees a row
// affected; the row lock held until commit orders all writers on the slot.
func (r *BookingRepository) Reserve(ctx context.Context, b *booking.Booking) error {
	err := runInTx(ctx, r.pool, func(tx pgx.Tx) error {
		const consume = `
UPDATE time_slots
SET current_bookings = current_bookings + 1
WHERE id = $1 AND current_bookings < max_bookings`

		tag, err := tx.Exec(ctx, consume, b.SlotID())
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM time_slots WHERE id = $1)`, b.SlotID()).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
			}
			return infra.WrapRepoErr("no remaining capacity", nil, infra.KindConflict)
		}

		const insert = `
INSERT INTO bookings (id, slot_id, user_name, user_email, booked_at)
VALUES ($1, $2, $3, $4, $5)`

		if _, err := tx.Exec(ctx, insert, b.ID(), b.SlotID(), b.UserName(), b.UserEmail(), b.BookedAt()); err != nil {
			if isUniqueViolation(err) {
				return infra.WrapRepoErr("user already booked this slot", err, infra.KindDuplicateKey)
			}
			return err
		}
		return nil
	})
	if err != nil {
		var repoErr infra.RepositoryError
		if errors.As(err, &repoErr) {
			return err
		}
		return infra.WrapRepoErr("failed to reserve slot", err)
	}
	return nil
}
