package commands

import (
	"context"

	"bookmyslot/internal/domain/booking"
	"bookmyslot/internal/domain/event"
	reqdto "bookmyslot/internal/handler/dto/request"
	"bookmyslot/internal/infra"
	"bookmyslot/internal/pkg/clock"
	"bookmyslot/internal/pkg/errs"
	"bookmyslot/internal/usecase/queries"
)

type ReservationCommands interface {
	// Reserve is the system's critical section: it either grants a booking
	// backed by one unit of slot capacity or fails without a trace.
	Reserve(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
}

type reservationCommandsImpl struct {
	slotReads      SlotReads
	bookingRepo    BookingRepository
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewReservationCommands(
	slotReads SlotReads,
	bookingRepo BookingRepository,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		slotReads:      slotReads,
		bookingRepo:    bookingRepo,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

func (r *reservationCommandsImpl) Reserve(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	slot, err := r.slotReads.SlotByID(ctx, req.SlotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSlotNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := r.clock.Now()

	// Pre-check on a snapshot. The past rejection is authoritative (start
	// times are immutable); the capacity reading is only a fast fail and
	// is re-checked inside the atomic reserve.
	switch slot.StatusAt(now) {
	case event.SlotStatusPast:
		return nil, errs.ErrSlotClosed
	case event.SlotStatusFull:
		return nil, errs.ErrCapacityExceeded
	}

	b, err := booking.NewBooking(req.SlotID, req.UserName, req.UserEmail, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := r.bookingRepo.Reserve(ctx, b); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			// Another reservation won the race after our snapshot; this
			// is correct behavior, surfaced as "slot just filled up".
			return nil, errs.Mark(err, errs.ErrCapacityExceeded)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, errs.ErrDuplicateBooking)
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrSlotNotFound)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return r.bookingQueries.GetByID(ctx, b.ID())
}
