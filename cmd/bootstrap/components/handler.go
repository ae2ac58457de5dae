package components

import (
	"logipark/internal/handler"
	"logipark/internal/handler/api"
	"logipark/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewParkingHandler,
		api.NewOccupancyHandler,
		api.NewFleetHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Parking     *api.ParkingHandler
	Occupancy   *api.OccupancyHandler
	Fleet       *api.FleetHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:        p.Auth,
		Reservation: p.Reservation,
		Parking:     p.Parking,
		Occupancy:   p.Occupancy,
		Fleet:       p.Fleet,
	}
}
