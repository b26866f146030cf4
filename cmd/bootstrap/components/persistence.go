package components

import (
	"loyalty-ledger/internal/infra/memstore"
	"loyalty-ledger/internal/infra/readstore"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/infra/uow"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/usecase/queries"
	"loyalty-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LedgerReadQueries)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
		// Reward
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RewardReadQueries)),
		),
		fx.Annotate(
			readstore.NewRewardReadStore,
			fx.As(new(queries.RewardReadStore)),
		),
		// Redemption
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RedemptionReadQueries)),
		),
		fx.Annotate(
			readstore.NewRedemptionReadStore,
			fx.As(new(queries.RedemptionReadStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.New,
		fx.Annotate(
			memstore.NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			memstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
		fx.Annotate(
			memstore.NewRewardReadStore,
			fx.As(new(queries.RewardReadStore)),
		),
		fx.Annotate(
			memstore.NewRedemptionReadStore,
			fx.As(new(queries.RedemptionReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, q, cfg.Ledger.TxMaxRetries)
}
