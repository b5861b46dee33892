package http

import (
	nethttp "net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "visitcap/docs"
	"visitcap/internal/handler"
)

// tabEventsPrefix is never rate limited: every event comes from the same extension client
// and a dropped event is a visit that is never counted.
const tabEventsPrefix = "/api/tabs/"

// NewRouter wires the popup API, the tab event endpoint, the blocked page and the popup assets.
// apiRate caps popup API requests per second per client; zero disables the limit.
func NewRouter(
	siteLimitHandler *handler.SiteLimitHandler,
	tabEventHandler *handler.TabEventHandler,
	blockedHandler *handler.BlockedHandler,
	staticDir string,
	enableSwagger bool,
	apiRate float64,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	if enableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
	})
	blockedHandler.RegisterRoutes(e)

	api := e.Group("/api")
	if apiRate > 0 {
		api.Use(newRateLimiter(apiRate))
	}
	siteLimitHandler.RegisterRoutes(api)
	tabEventHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)
	return e
}

func newRateLimiter(perSecond float64) echo.MiddlewareFunc {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(perSecond),
		Burst: burst * 2,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, tabEventsPrefix)
		},
		Store: store,
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return handler.Error(c, nethttp.StatusTooManyRequests, "too many requests")
		},
	})
}
