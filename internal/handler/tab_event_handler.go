package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"visitcap/internal/model"
	"visitcap/internal/service"
)

// TabEventHandler receives tab lifecycle events forwarded by the browser extension.
type TabEventHandler struct {
	service service.ObserverService
}

type tabEventRequest struct {
	Type       string `json:"type"`
	TabID      *int64 `json:"tabId"`
	URL        string `json:"url"`
	ChangeInfo struct {
		URL    string `json:"url"`
		Status string `json:"status"`
	} `json:"changeInfo"`
}

type redirectResponse struct {
	TabID int64  `json:"tabId"`
	URL   string `json:"url"`
}

// tabEventResponse is empty when the tab may continue.
type tabEventResponse struct {
	Redirect *redirectResponse `json:"redirect,omitempty"`
}

type tabStatsResponse struct {
	TrackedTabs int `json:"trackedTabs"`
}

// NewTabEventHandler creates a new TabEventHandler.
func NewTabEventHandler(service service.ObserverService) *TabEventHandler {
	return &TabEventHandler{service: service}
}

// RegisterRoutes registers the tab event routes on g.
func (h *TabEventHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/tabs/events", h.Event)
	g.GET("/tabs/stats", h.Stats)
}

// Event feeds one tab event to the observer and returns the redirect, if any.
//
//	@Summary	Report a tab event
//	@Tags		tabs
//	@Accept		json
//	@Produce	json
//	@Param		body	body		handler.tabEventRequest	true	"Tab event"
//	@Success	200		{object}	handler.tabEventResponse
//	@Failure	400		{object}	handler.errorResponse
//	@Router		/tabs/events [post]
func (h *TabEventHandler) Event(c echo.Context) error {
	var req tabEventRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	event := model.TabEvent{
		Type:  model.TabEventType(req.Type),
		TabID: req.TabID,
		URL:   req.URL,
		ChangeInfo: model.TabChangeInfo{
			URL:    req.ChangeInfo.URL,
			Status: req.ChangeInfo.Status,
		},
	}
	redirect, err := h.service.HandleEvent(c.Request().Context(), event)
	if err != nil {
		return writeServiceError(c, err)
	}
	if redirect == nil {
		return c.JSON(http.StatusOK, tabEventResponse{})
	}
	return c.JSON(http.StatusOK, tabEventResponse{
		Redirect: &redirectResponse{TabID: redirect.TabID, URL: redirect.URL},
	})
}

// Stats reports how many tabs are currently tracked.
//
//	@Summary	Tab tracker stats
//	@Tags		tabs
//	@Produce	json
//	@Success	200	{object}	handler.tabStatsResponse
//	@Router		/tabs/stats [get]
func (h *TabEventHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, tabStatsResponse{TrackedTabs: h.service.TrackedTabs()})
}
