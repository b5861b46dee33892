package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"visitcap/internal/service"
	"visitcap/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Error writes a JSON error body with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return Error(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrConflict):
		return Error(c, http.StatusConflict, "conflict")
	default:
		logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}
