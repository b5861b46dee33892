package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"visitcap/pkg/logger"
)

// RequestIDContextKey is where RequestLoggerMiddleware stores the request id.
const RequestIDContextKey = "request_id"

// RequestLoggerMiddleware tags each request with an id and logs it once it completes.
// An incoming X-Request-ID header is reused.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(RequestIDContextKey, id)
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			args := []any{
				"request_id", id,
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"latency", time.Since(start),
			}
			switch {
			case status >= 500:
				logger.Error("request", args...)
			case status >= 400:
				logger.Warn("request", args...)
			default:
				logger.Debug("request", args...)
			}
			return nil
		}
	}
}
