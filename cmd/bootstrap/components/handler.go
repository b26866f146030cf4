package components

import (
	"loyalty-ledger/internal/handler"
	"loyalty-ledger/internal/handler/api"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckInHandler,
		api.NewRedemptionHandler,
		api.NewCustomerHandler,
		api.NewBusinessHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
