package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kaapi/backend/internal/handler"
	"kaapi/backend/internal/ratelimit"
)

// NewRouter wires the API routes, middleware, and the static frontend.
func NewRouter(
	uploadHandler *handler.UploadHandler,
	revenueHandler *handler.RevenueHandler,
	insightsHandler *handler.InsightsHandler,
	chatHandler *handler.ChatHandler,
	limiter *ratelimit.Limiter,
	allowedOrigins []string,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	e.Use(CORSMiddleware(allowedOrigins))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.Use(RateLimitMiddleware(limiter))
	uploadHandler.RegisterRoutes(api)
	revenueHandler.RegisterRoutes(api)
	insightsHandler.RegisterRoutes(api)
	chatHandler.RegisterRoutes(api)

	RegisterStatic(e, staticDir)

	return e
}
