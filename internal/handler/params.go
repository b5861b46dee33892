package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// queryOr returns the query value or fallback when it is absent or blank.
func queryOr(c echo.Context, name, fallback string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}
	return fallback
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
