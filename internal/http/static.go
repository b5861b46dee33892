package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"visitcap/pkg/logger"
)

// PopupIndex is the page served for / and for any path that is not a file in the popup dir.
const PopupIndex = "popup.html"

// registerStatic serves the popup assets from dir. Nothing is registered when dir is empty
// or has no popup index.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	index := filepath.Join(dir, PopupIndex)
	if info, err := os.Stat(index); err != nil || info.IsDir() {
		logger.Warn("popup assets not found, serving API only", "index", index)
		return
	}

	files := nethttp.FileServer(nethttp.Dir(dir))
	e.GET("/*", func(c echo.Context) error {
		p := c.Request().URL.Path
		if p == "/api" || strings.HasPrefix(p, "/api/") {
			return echo.ErrNotFound
		}
		if isFile(dir, p) {
			files.ServeHTTP(c.Response(), c.Request())
			return nil
		}
		return c.File(index)
	})
	logger.Info("serving popup assets", "dir", dir)
}

func isFile(dir, requestPath string) bool {
	rel := strings.TrimPrefix(path.Clean("/"+requestPath), "/")
	if rel == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
	return err == nil && !info.IsDir()
}
