package components

import (
	"hotelhub/internal/handler"
	"hotelhub/internal/handler/api"
	"hotelhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewInvoiceHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, room *api.RoomHandler, booking *api.BookingHandler, invoice *api.InvoiceHandler, stats *api.StatsHandler) handler.Handlers {
			return handler.Handlers{
				Auth:    auth,
				Room:    room,
				Booking: booking,
				Invoice: invoice,
				Stats:   stats,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
