package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	vh "visitcap/internal/http"
)

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRegisterStatic_EmptyDir(t *testing.T) {
	e := echo.New()
	vh.RegisterStatic(e, "")
	require.Empty(t, e.Routes())
}

func TestRegisterStatic_MissingIndex(t *testing.T) {
	e := echo.New()
	vh.RegisterStatic(e, t.TempDir())
	require.Empty(t, e.Routes())
}

func TestRegisterStatic_ServesPopup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, vh.PopupIndex), []byte("POPUP"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "popup.js"), []byte("SCRIPT"), 0o600))

	e := echo.New()
	vh.RegisterStatic(e, dir)

	rec := get(e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "POPUP")

	rec = get(e, "/popup.js")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "SCRIPT")

	rec = get(e, "/settings")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "POPUP")

	rec = get(e, "/api/site-limits")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
