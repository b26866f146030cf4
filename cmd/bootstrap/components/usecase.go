package components

import (
	"loyalty-ledger/internal/infra/cache"
	"loyalty-ledger/internal/pkg/clock"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/usecase"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"
	"loyalty-ledger/internal/usecase/shared"

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
		NewSummaryCache,
		fx.As(new(queries.SummaryCache)),
		fx.As(new(commands.ProjectionInvalidator)),
	),
	commands.NewPointsLedger,
	func(l *commands.PointsLedger) queries.LedgerReader {
		return l
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewCheckInCommands,
		commands.NewRedemptionUseCase,
		commands.NewRewardUseCase,
		commands.NewBusinessUseCase,
		commands.NewBonusUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBalanceQueries,
		queries.NewRewardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewSummaryCache may return a nil cache; every method tolerates that.
func NewSummaryCache(cfg config.Config) (*cache.SummaryCache, error) {
	return cache.NewSummaryCache(cfg.Ledger.SummaryCacheSize)
}

func NewCheckInCommands(ledger *commands.PointsLedger, uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.CheckInCommands {
	return commands.NewCheckInUseCase(ledger, uow, clk, int64(cfg.Ledger.DefaultPointsPerCheckIn))
}
