package components

import (
	"frontdesk/internal/infra/export"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/usecase"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"

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
		queries.NewAvailabilityChecker,
		fx.As(fx.Self()),
		fx.As(new(commands.RoomAvailability)),
	),
	fx.Annotate(
		export.NewXLSXExporter,
		fx.As(new(queries.ReservationExporter)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewHotelCommands,
		commands.NewRoomCommands,
		commands.NewClientCommands,
		commands.NewReservationCommands,
		commands.NewStayCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewHotelQueries,
		queries.NewRoomQueries,
		queries.NewClientQueries,
		queries.NewReservationQueries,
		queries.NewPublicQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
