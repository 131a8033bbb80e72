package components

import (
	"event-marketplace/internal/infra/readstore"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/infra/uow"
	"event-marketplace/internal/usecase/queries"
	"event-marketplace/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Agreement
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AgreementViewQueries)),
		),
		fx.Annotate(
			readstore.NewAgreementReadStore,
			fx.As(new(queries.AgreementReadStore)),
		),
		// Statistics
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatisticsViewQueries)),
		),
		fx.Annotate(
			readstore.NewStatisticsReadStore,
			fx.As(new(queries.StatisticsReadStore)),
		),
		// Parties (events, vendor profiles)
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MarketplaceQueries)),
		),
		fx.Annotate(
			readstore.NewMarketplaceReadStore,
			fx.As(new(queries.PartyReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
