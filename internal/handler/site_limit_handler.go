package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"visitcap/internal/service"
)

// SiteLimitHandler serves the popup CRUD API for site limits.
type SiteLimitHandler struct {
	service service.SiteLimitService
}

type createSiteLimitRequest struct {
	URL          string `json:"url"`
	VisitLimit   int    `json:"visitLimit"`
	TimeInterval string `json:"timeInterval"`
}

type updateSiteLimitRequest struct {
	VisitLimit   int    `json:"visitLimit"`
	TimeInterval string `json:"timeInterval"`
}

type siteLimitResponse struct {
	ID             string  `json:"id"`
	Pattern        string  `json:"pattern"`
	VisitLimit     int     `json:"visitLimit"`
	TimeInterval   string  `json:"timeInterval"`
	VisitCount     int     `json:"visitCount"`
	LastReset      string  `json:"lastReset"`
	ResetAt        *string `json:"resetAt,omitempty"`
	TimeUntilReset string  `json:"timeUntilReset"`
	CreatedAt      string  `json:"createdAt"`
}

type deleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

// NewSiteLimitHandler creates a new SiteLimitHandler.
func NewSiteLimitHandler(service service.SiteLimitService) *SiteLimitHandler {
	return &SiteLimitHandler{service: service}
}

// RegisterRoutes registers the site limit routes on g.
func (h *SiteLimitHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/site-limits", h.List)
	g.POST("/site-limits", h.Create)
	g.PUT("/site-limits/:id", h.Update)
	g.POST("/site-limits/:id/reset", h.Reset)
	g.DELETE("/site-limits/:id", h.Delete)
	g.DELETE("/site-limits", h.DeleteAll)
}

// List returns every site limit.
//
//	@Summary	List site limits
//	@Tags		site-limits
//	@Produce	json
//	@Success	200	{array}		handler.siteLimitResponse
//	@Failure	500	{object}	handler.errorResponse
//	@Router		/site-limits [get]
func (h *SiteLimitHandler) List(c echo.Context) error {
	limits, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]siteLimitResponse, 0, len(limits))
	for _, limit := range limits {
		response = append(response, toSiteLimitResponse(limit))
	}
	return c.JSON(http.StatusOK, response)
}

// Create creates a new site limit.
//
//	@Summary	Create a site limit
//	@Tags		site-limits
//	@Accept		json
//	@Produce	json
//	@Param		body	body		handler.createSiteLimitRequest	true	"Site limit"
//	@Success	201		{object}	handler.siteLimitResponse
//	@Failure	400		{object}	handler.errorResponse
//	@Failure	409		{object}	handler.errorResponse
//	@Router		/site-limits [post]
func (h *SiteLimitHandler) Create(c echo.Context) error {
	var req createSiteLimitRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	limit, err := h.service.Create(c.Request().Context(), req.URL, req.VisitLimit, req.TimeInterval)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toSiteLimitResponse(limit))
}

// Update changes the limit and interval of a site limit.
//
//	@Summary	Update a site limit
//	@Tags		site-limits
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer							true	"Site limit ID"
//	@Param		body	body		handler.updateSiteLimitRequest	true	"New limit"
//	@Success	200		{object}	handler.siteLimitResponse
//	@Failure	400		{object}	handler.errorResponse
//	@Failure	404		{object}	handler.errorResponse
//	@Router		/site-limits/{id} [put]
func (h *SiteLimitHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	var req updateSiteLimitRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	limit, err := h.service.Update(c.Request().Context(), id, req.VisitLimit, req.TimeInterval)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSiteLimitResponse(limit))
}

// Reset zeroes the visit count of a site limit and starts a new window.
//
//	@Summary	Reset a site limit
//	@Tags		site-limits
//	@Produce	json
//	@Param		id	path		integer	true	"Site limit ID"
//	@Success	200	{object}	handler.siteLimitResponse
//	@Failure	404	{object}	handler.errorResponse
//	@Router		/site-limits/{id}/reset [post]
func (h *SiteLimitHandler) Reset(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	limit, err := h.service.Reset(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSiteLimitResponse(limit))
}

// Delete removes a site limit.
//
//	@Summary	Delete a site limit
//	@Tags		site-limits
//	@Param		id	path	integer	true	"Site limit ID"
//	@Success	204
//	@Failure	404	{object}	handler.errorResponse
//	@Router		/site-limits/{id} [delete]
func (h *SiteLimitHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAll removes every site limit.
//
//	@Summary	Delete all site limits
//	@Tags		site-limits
//	@Produce	json
//	@Success	200	{object}	handler.deleteAllResponse
//	@Router		/site-limits [delete]
func (h *SiteLimitHandler) DeleteAll(c echo.Context) error {
	n, err := h.service.DeleteAll(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, deleteAllResponse{Deleted: n})
}

func toSiteLimitResponse(limit service.SiteLimitDTO) siteLimitResponse {
	return siteLimitResponse{
		ID:             limit.ID,
		Pattern:        limit.Pattern,
		VisitLimit:     limit.VisitLimit,
		TimeInterval:   limit.TimeInterval,
		VisitCount:     limit.VisitCount,
		LastReset:      limit.LastReset.UTC().Format(time.RFC3339),
		ResetAt:        formatTimePtr(limit.ResetAt),
		TimeUntilReset: limit.TimeUntilReset,
		CreatedAt:      limit.CreatedAt.UTC().Format(time.RFC3339),
	}
}
