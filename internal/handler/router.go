package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"loyalty-ledger/internal/domain/principal"
	"loyalty-ledger/internal/handler/api"
	"loyalty-ledger/internal/handler/middleware"
	"loyalty-ledger/internal/pkg/config"
	"loyalty-ledger/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type handlers struct {
	CheckIn    *api.CheckInHandler
	Redemption *api.RedemptionHandler
	Customer   *api.CustomerHandler
	Business   *api.BusinessHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	checkInHandler *api.CheckInHandler,
	redemptionHandler *api.RedemptionHandler,
	customerHandler *api.CustomerHandler,
	businessHandler *api.BusinessHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers{
		CheckIn:    checkInHandler,
		Redemption: redemptionHandler,
		Customer:   customerHandler,
		Business:   businessHandler,
	}, authMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h handlers, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth(), rateLimiter.Limit())
	{
		customerOnly := []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleCustomer)}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/check-ins", Handler: h.CheckIn.CheckIn, Mw: customerOnly},
			{Method: http.MethodPost, Path: "/redemptions", Handler: h.Redemption.Redeem, Mw: customerOnly},
			{Method: http.MethodGet, Path: "/businesses/:id/summary", Handler: h.Customer.Summary, Mw: customerOnly},
			{Method: http.MethodGet, Path: "/businesses/:id/history", Handler: h.Customer.History, Mw: customerOnly},
			{Method: http.MethodGet, Path: "/businesses/:id/reward-progress", Handler: h.Customer.Progress, Mw: customerOnly},
			{Method: http.MethodGet, Path: "/businesses/:id/redemptions", Handler: h.Customer.Redemptions, Mw: customerOnly},
			{Method: http.MethodGet, Path: "/me/overview", Handler: h.Customer.Overview, Mw: customerOnly},
			// any signed-in role may browse a catalog
			{Method: http.MethodGet, Path: "/businesses/:id/rewards", Handler: h.Customer.ListRewards},
		})

		business := apiGroup.Group("/business")
		business.Use(authMiddleware.RequireRole(principal.RoleBusiness))
		addRoutes(business, []route{
			{Method: http.MethodPut, Path: "/earning-policy", Handler: h.Business.ConfigureEarning},
			{Method: http.MethodGet, Path: "/rewards", Handler: h.Business.ListRewards},
			{Method: http.MethodPost, Path: "/rewards", Handler: h.Business.CreateReward},
			{Method: http.MethodPut, Path: "/rewards/:id", Handler: h.Business.UpdateReward},
			{Method: http.MethodPatch, Path: "/rewards/:id/active", Handler: h.Business.SetRewardActive},
			{Method: http.MethodPost, Path: "/bonuses", Handler: h.Business.GrantBonus},
			{Method: http.MethodGet, Path: "/top-customers", Handler: h.Business.TopCustomers},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Business.Stats},
			{Method: http.MethodGet, Path: "/check-ins", Handler: h.Business.RecentCheckIns},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
