package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daybook/events-api/internal/api/metrics"
	"github.com/daybook/events-api/internal/core/ports"
)

// EventHandler handles event creation and listing for the authenticated user.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles POST /api/events — stores a new event owned by the caller.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event fields"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	event, err := h.service.CreateEvent(c.Request().Context(), ports.CreateEventInput{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	metrics.EventsCreatedTotal.WithLabelValues(event.Category).Inc()
	return c.JSON(http.StatusCreated, event)
}

// List handles GET /api/events — returns the caller's events, optionally
// filtered by exact category and ordered by date or category.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        sort      query     string  false  "Sort order: date or category"
// @Param        category  query     string  false  "Exact category filter"
// @Success      200       {array}   domain.Event
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	events, err := h.service.ListEvents(c.Request().Context(), ports.ListEventsInput{
		OwnerID:  userID,
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, events)
}
