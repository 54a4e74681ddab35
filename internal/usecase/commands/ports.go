package commands

import (
	"context"

	"bookmyslot/internal/domain/booking"
	"bookmyslot/internal/domain/event"

	"github.com/google/uuid"
)

// Write-side ports. The command layer never reaches for read-side query
// types (CQRS separation); slot lookups here return domain snapshots.

type EventRepository interface {
	// Create persists the event and all of its slots as one transaction;
	// a failure persists nothing.
	Create(ctx context.Context, e *event.Event) error
}

type SlotReads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*event.Slot, error)
}

type BookingRepository interface {
	// Reserve consumes one unit of the slot's remaining capacity and
	// appends the booking to the ledger as a single atomic unit.
	// Implementations must serialize concurrent calls on the same slot:
	// two callers that both observed available > 0 must not both succeed
	// when one unit remains. Losing the race is KindConflict; a second
	// booking for the same (slot, email) is KindDuplicateKey.
	Reserve(ctx context.Context, b *booking.Booking) error
}
