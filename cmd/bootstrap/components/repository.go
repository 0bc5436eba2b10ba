package components

import (
	"hotelhub/internal/infra/repository"
	"hotelhub/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
			fx.As(new(usecase.RoomReader)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewStatsRepository,
			fx.As(new(usecase.StatsRepository)),
		),
	),
)
