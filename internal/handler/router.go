package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"punchcard/internal/handler/api"
	"punchcard/internal/handler/middleware"
	"punchcard/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	QRCode     *api.QRCodeHandler
	Scan       *api.ScanHandler
	Coupon     *api.CouponHandler
	Redemption *api.RedemptionHandler
	Balance    *api.BalanceHandler
	Action     *api.ActionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/businesses/:id/coupons", Handler: h.Coupon.ListByBusiness},
			{Method: http.MethodGet, Path: "/coupons/:id", Handler: h.Coupon.GetByID},
		})

		client := apiGroup.Group("")
		client.Use(authMiddleware.RequireClientRole())
		addRoutes(client, []route{
			{Method: http.MethodGet, Path: "/qr-code", Handler: h.QRCode.GetMyCode},
			{Method: http.MethodGet, Path: "/points", Handler: h.Balance.GetMyBalance},
			{Method: http.MethodGet, Path: "/redemptions/:id", Handler: h.Redemption.GetOwn},
			{Method: http.MethodPost, Path: "/coupons/redeem", Handler: h.Redemption.Redeem},
		})

		counter := apiGroup.Group("")
		counter.Use(authMiddleware.RequireCounterRole())
		addRoutes(counter, []route{
			{Method: http.MethodPost, Path: "/scan", Handler: h.Scan.Scan},
			{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupon.Create},
			{Method: http.MethodDelete, Path: "/coupons/:id", Handler: h.Coupon.Deactivate},
			{Method: http.MethodGet, Path: "/actions", Handler: h.Action.List},
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
