package commands

import (
	"context"

	"bookmyslot/internal/domain/event"
	reqdto "bookmyslot/internal/handler/dto/request"
	"bookmyslot/internal/pkg/clock"
	"bookmyslot/internal/pkg/errs"
	"bookmyslot/internal/usecase/queries"
)

type EventCommands interface {
	CreateEvent(ctx context.Context, req reqdto.CreateEventRequest) (*queries.EventView, error)
}

type eventCommandsImpl struct {
	eventRepo    EventRepository
	eventQueries queries.EventQueries
	clock        clock.Clock
}

func NewEventCommands(
	eventRepo EventRepository,
	eventQueries queries.EventQueries,
	clock clock.Clock,
) EventCommands {
	return &eventCommandsImpl{
		eventRepo:    eventRepo,
		eventQueries: eventQueries,
		clock:        clock,
	}
}

func (c *eventCommandsImpl) CreateEvent(ctx context.Context, req reqdto.CreateEventRequest) (*queries.EventView, error) {
	e, err := event.NewEvent(req.Title, req.GetDescription(), req.ToSlotSpecs(), c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.eventRepo.Create(ctx, e); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Read-after-write: serve the persisted view, not the request echo
	return c.eventQueries.GetByID(ctx, e.ID())
}
