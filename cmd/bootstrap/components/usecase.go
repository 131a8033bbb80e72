package components

import (
	"event-marketplace/internal/domain/template"
	"event-marketplace/internal/infra/cache"
	"event-marketplace/internal/pkg/clock"
	"event-marketplace/internal/usecase"
	"event-marketplace/internal/usecase/commands"
	"event-marketplace/internal/usecase/queries"

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
	template.NewDefaultCatalog,
	fx.Annotate(
		func(s cache.StatisticsStore) cache.StatisticsStore { return s },
		fx.As(new(queries.StatisticsCache)),
		fx.As(new(commands.StatisticsInvalidator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewMessageUseCase,
		commands.NewAgreementUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAgreementQueries,
		queries.NewStatisticsQueries,
		queries.NewTemplateQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
