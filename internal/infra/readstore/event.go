package readstore

import (
	"context"
	"errors"
	"time"

	"bookmyslot/internal/domain/event"
	"bookmyslot/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventReadStore struct {
	pool *pgxpool.Pool
}

func NewEventReadStore(pool *pgxpool.Pool) *EventReadStore {
	return &EventReadStore{pool: pool}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	const query = `
SELECT id, title, description, created_at
FROM events
WHERE id = $1`

	var (
		eventID     uuid.UUID
		title       string
		description string
		createdAt   time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(&eventID, &title, &description, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}

	slots, err := r.slotsByEventIDs(ctx, []uuid.UUID{eventID})
	if err != nil {
		return nil, err
	}

	return event.ReconstructEvent(eventID, title, description, createdAt.UTC(), slots[eventID]), nil
}

func (r *EventReadStore) FindAll(ctx context.Context) ([]*event.Event, error) {
	const query = `
SELECT id, title, description, created_at
FROM events
ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	type eventRow struct {
		id          uuid.UUID
		title       string
		description string
		createdAt   time.Time
	}

	var (
		eventRows []eventRow
		eventIDs  []uuid.UUID
	)
	for rows.Next() {
		var er eventRow
		if err := rows.Scan(&er.id, &er.title, &er.description, &er.createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		eventRows = append(eventRows, er)
		eventIDs = append(eventIDs, er.id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event rows", err)
	}

	events := make([]*event.Event, 0, len(eventRows))
	if len(eventRows) == 0 {
		return events, nil
	}

	slots, err := r.slotsByEventIDs(ctx, eventIDs)
	if err != nil {
		return nil, err
	}

	for _, er := range eventRows {
		events = append(events, event.ReconstructEvent(er.id, er.title, er.description, er.createdAt.UTC(), slots[er.id]))
	}
	return events, nil
}

func (r *EventReadStore) slotsByEventIDs(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID][]*event.Slot, error) {
	const query = `
SELECT id, event_id, start_time, max_bookings, current_bookings
FROM time_slots
WHERE event_id = ANY($1)
ORDER BY start_time, id`

	rows, err := r.pool.Query(ctx, query, eventIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	slots := make(map[uuid.UUID][]*event.Slot, len(eventIDs))
	for rows.Next() {
		var (
			slotID, eventID              uuid.UUID
			startTime                    time.Time
			maxBookings, currentBookings int32
		)
		if err := rows.Scan(&slotID, &eventID, &startTime, &maxBookings, &currentBookings); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		slots[eventID] = append(slots[eventID],
			event.ReconstructSlot(slotID, eventID, startTime.UTC(), maxBookings, currentBookings))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}
	return slots, nil
}
