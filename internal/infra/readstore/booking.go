package readstore

import (
	"context"
	"errors"

	"bookmyslot/internal/infra"
	"bookmyslot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// bookingViewColumns joins each booking with its slot and owning event so a
// single query feeds the enriched view.
const bookingViewColumns = `
SELECT b.id, b.slot_id, s.event_id, b.user_name, b.user_email, b.booked_at,
       e.title, e.description, s.start_time
FROM bookings b
JOIN time_slots s ON s.id = b.slot_id
JOIN events e ON e.id = s.event_id`

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, bookingViewColumns+` WHERE b.id = $1`, id)
	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserEmail(ctx context.Context, email string) ([]*queries.BookingView, error) {
	return r.list(ctx, bookingViewColumns+` WHERE b.user_email = $1 ORDER BY b.booked_at, b.id`, email)
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	return r.list(ctx, bookingViewColumns+` ORDER BY b.booked_at, b.id`)
}

func (r *BookingReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view        queries.BookingView
		description string
	)
	err := row.Scan(
		&view.ID, &view.SlotID, &view.EventID, &view.UserName, &view.UserEmail, &view.BookedAt,
		&view.EventTitle, &description, &view.SlotStartTime,
	)
	if err != nil {
		return nil, err
	}
	view.BookedAt = view.BookedAt.UTC()
	view.SlotStartTime = view.SlotStartTime.UTC()
	if description != "" {
		view.EventDescription = &description
	}
	return &view, nil
}
