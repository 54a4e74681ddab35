package components

import (
	"bookmyslot/internal/handler"
	"bookmyslot/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
