package bootstrap

import (
	"loyalty-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already loaded config. Storage selection happens
// before the graph is built, so the config cannot be a lazy provider.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
