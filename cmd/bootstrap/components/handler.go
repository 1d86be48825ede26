package components

import (
	"frontdesk/internal/handler"
	"frontdesk/internal/handler/api"
	"frontdesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewClientHandler,
		api.NewReservationHandler,
		api.NewPublicHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
