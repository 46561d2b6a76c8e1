package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/koprumezun/mezunhub/internal/app/models/dto"
	"github.com/koprumezun/mezunhub/internal/demo"
	"github.com/koprumezun/mezunhub/internal/middleware"
	"github.com/koprumezun/mezunhub/internal/pkg/apperrors"
)

// MessageController handles direct message threads
type MessageController struct {
	store  *demo.Store
	logger zerolog.Logger
}

// NewMessageController creates a new MessageController
func NewMessageController(store *demo.Store, logger zerolog.Logger) *MessageController {
	return &MessageController{store: store, logger: logger}
}

// ListThreads returns all message threads
// @Summary List message threads
// @Tags messages
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.MessageThread}
// @Router /messages/threads [get]
func (c *MessageController) ListThreads(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().MessageThreads))
}

// SendMessage appends a message to a thread
// @Summary Send a message
// @Description Sends a message in sent status; delivery and read receipts follow automatically after short delays
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Thread ID"
// @Param request body dto.SendMessageRequest true "Message body"
// @Success 201 {object} dto.APIResponse{data=models.Message}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.APIResponse "Thread not found"
// @Router /messages/threads/{id} [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	message, ok := c.store.SendMessage(ctx.Param("id"), req.Body)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrThreadNotFound, "Message thread not found"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(message))
}
