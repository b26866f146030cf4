package bootstrap

import (
	"loyalty-ledger/cmd/bootstrap/components"
	"loyalty-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

// NewModule wires the application for the configured storage. The memory
// backend never opens a database pool.
func NewModule(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		StorageModule(cfg.Ledger.Storage),
		components.UseCaseModule,
		components.HandlerModule,
	)
}

func StorageModule(storage string) fx.Option {
	if storage == config.StorageMemory {
		return components.MemoryPersistenceModule
	}
	return fx.Options(
		DBModule,
		components.PostgresPersistenceModule,
	)
}
