package components

import (
	"bookmyslot/internal/infra/readstore"
	"bookmyslot/internal/infra/repository"
	"bookmyslot/internal/usecase/commands"
	"bookmyslot/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewEventRepository,
			fx.As(new(commands.EventRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.SlotReads)),
			fx.As(new(commands.BookingRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)
