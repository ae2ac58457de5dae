package components

import (
	"logipark/internal/domain/reservation"
	"logipark/internal/pkg/clock"
	"logipark/internal/usecase"
	"logipark/internal/usecase/commands"
	"logipark/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewHourlyPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	func(clock clock.Clock, calc reservation.PriceCalculator) *reservation.Services {
		return &reservation.Services{
			Clock:           clock,
			PriceCalculator: calc,
		}
	},
	commands.NewSpaceLedger,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewOccupancyCommands,
		commands.NewInventoryCommands,
		commands.NewFleetCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewParkingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
