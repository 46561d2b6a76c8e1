package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/koprumezun/mezunhub/internal/app/models"
	"github.com/koprumezun/mezunhub/internal/app/models/dto"
	"github.com/koprumezun/mezunhub/internal/demo"
	"github.com/koprumezun/mezunhub/internal/middleware"
	"github.com/koprumezun/mezunhub/internal/pkg/apperrors"
)

// EventController handles community event operations
type EventController struct {
	store  *demo.Store
	logger zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(store *demo.Store, logger zerolog.Logger) *EventController {
	return &EventController{store: store, logger: logger}
}

// ListEvents returns all events
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Event}
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().Events))
}

// CreateEvent creates an event organized by the viewer
// @Summary Create an event
// @Description Creates an event with the viewer as organizer and first attendee. Capacity defaults to 150; a positive ticket price makes tickets available.
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.APIResponse{data=models.Event}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create event payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	event := c.store.CreateEvent(demo.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Type:        req.Type,
		Tags:        req.Tags,
		Capacity:    req.Capacity,
		Currency:    req.Currency,
		TicketPrice: req.TicketPrice,
	})
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(event))
}

// RegisterEvent registers the viewer for an event
// @Summary Register for an event
// @Description Registers the viewer. Registering twice is a no-op; a sold-out event is reported as a conflict.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.Event}
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 409 {object} dto.APIResponse "Event is sold out"
// @Router /events/{id}/register [post]
func (c *EventController) RegisterEvent(ctx *gin.Context) {
	event, ok := c.store.RegisterEvent(ctx.Param("id"))
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrEventNotFound, "Event not found"))
		return
	}
	// The store leaves a sold-out event untouched; surface that as an
	// explicit conflict instead of a silent success.
	if event.TicketStatus == models.TicketSoldOut && !event.Registered {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrEventSoldOut, "Event is sold out"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(event))
}
