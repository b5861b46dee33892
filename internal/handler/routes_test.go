package handler_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"visitcap/internal/handler"
)

func assertRoute(t *testing.T, routes []*echo.Route, method, path string) {
	t.Helper()
	for _, r := range routes {
		if r.Method == method && r.Path == path {
			return
		}
	}
	t.Fatalf("route not found: %s %s", method, path)
}

func TestHandler_RegisterRoutes(t *testing.T) {
	e := newTestEcho()
	g := e.Group("")

	handler.NewSiteLimitHandler(nil).RegisterRoutes(g)
	handler.NewTabEventHandler(nil).RegisterRoutes(g)
	handler.NewBlockedHandler().RegisterRoutes(e)

	routes := e.Routes()

	assertRoute(t, routes, http.MethodGet, "/site-limits")
	assertRoute(t, routes, http.MethodPost, "/site-limits")
	assertRoute(t, routes, http.MethodPut, "/site-limits/:id")
	assertRoute(t, routes, http.MethodPost, "/site-limits/:id/reset")
	assertRoute(t, routes, http.MethodDelete, "/site-limits/:id")
	assertRoute(t, routes, http.MethodDelete, "/site-limits")

	assertRoute(t, routes, http.MethodPost, "/tabs/events")
	assertRoute(t, routes, http.MethodGet, "/tabs/stats")

	assertRoute(t, routes, http.MethodGet, "/blocked")
}
