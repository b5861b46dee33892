package handler

import (
	"bytes"
	"html"
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"

	"visitcap/internal/service"
)

// Values shown when the redirect did not carry a parameter.
const (
	defaultSiteURL    = "Unknown site"
	defaultVisitCount = "0"
	defaultVisitLimit = "0"
)

var blockedPage = template.Must(template.New("blocked").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Visit limit reached</title>
<style>
body { font-family: system-ui, sans-serif; background: #f5f5f4; color: #1c1917; display: flex; align-items: center; justify-content: center; min-height: 100vh; margin: 0; }
main { background: #fff; border-radius: 12px; padding: 2rem 2.5rem; max-width: 28rem; box-shadow: 0 2px 12px rgba(0,0,0,.08); }
h1 { font-size: 1.4rem; margin-top: 0; }
dt { font-weight: 600; margin-top: .75rem; }
dd { margin: 0; }
</style>
</head>
<body>
<main>
<h1>Visit limit reached</h1>
<p>You have reached your visit limit for <strong id="site-url">{{.SiteURL}}</strong>.</p>
<dl>
<dt>Visits</dt><dd id="visit-count">{{.VisitCount}} of {{.VisitLimit}}</dd>
<dt>Time interval</dt><dd id="time-interval">{{.TimeInterval}}</dd>
<dt>Time until reset</dt><dd id="time-until-reset">{{.TimeUntilReset}}</dd>
</dl>
</main>
</body>
</html>
`))

// BlockedPageData is what the blocked page displays.
type BlockedPageData struct {
	SiteURL        string
	VisitCount     string
	VisitLimit     string
	TimeInterval   string
	TimeUntilReset string
}

// BlockedHandler renders the page a tab is redirected to once a limit is exceeded.
// It only reads its query string.
type BlockedHandler struct {
	policy *bluemonday.Policy
}

// NewBlockedHandler creates a new BlockedHandler.
func NewBlockedHandler() *BlockedHandler {
	return &BlockedHandler{policy: bluemonday.StrictPolicy()}
}

// RegisterRoutes registers GET /blocked on e.
func (h *BlockedHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/blocked", h.Show)
}

// Show renders the blocked page from the redirect query.
func (h *BlockedHandler) Show(c echo.Context) error {
	data := h.pageData(c)
	var buf bytes.Buffer
	if err := blockedPage.Execute(&buf, data); err != nil {
		return writeServiceError(c, err)
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (h *BlockedHandler) pageData(c echo.Context) BlockedPageData {
	return BlockedPageData{
		SiteURL:        h.clean(queryOr(c, service.ParamSiteURL, defaultSiteURL), defaultSiteURL),
		VisitCount:     h.clean(queryOr(c, service.ParamVisitCount, defaultVisitCount), defaultVisitCount),
		VisitLimit:     h.clean(queryOr(c, service.ParamVisitLimit, defaultVisitLimit), defaultVisitLimit),
		TimeInterval:   h.clean(queryOr(c, service.ParamTimeInterval, service.NotAvailable), service.NotAvailable),
		TimeUntilReset: h.clean(queryOr(c, service.ParamTimeUntilReset, service.NotAvailable), service.NotAvailable),
	}
}

// clean drops any markup; the template escapes the remaining text.
func (h *BlockedHandler) clean(value, fallback string) string {
	v := strings.TrimSpace(html.UnescapeString(h.policy.Sanitize(value)))
	if v == "" {
		return fallback
	}
	return v
}
