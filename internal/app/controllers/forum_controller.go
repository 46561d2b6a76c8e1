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

// ForumController handles forum topics and threads
type ForumController struct {
	store  *demo.Store
	logger zerolog.Logger
}

// NewForumController creates a new ForumController
func NewForumController(store *demo.Store, logger zerolog.Logger) *ForumController {
	return &ForumController{store: store, logger: logger}
}

// ListTopics returns all forum topics
// @Summary List forum topics
// @Tags forums
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ForumTopic}
// @Router /forums/topics [get]
func (c *ForumController) ListTopics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().Topics))
}

// ListThreads returns all forum threads
// @Summary List forum threads
// @Tags forums
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ForumThread}
// @Router /forums/threads [get]
func (c *ForumController) ListThreads(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().Threads))
}

// ReplyToThread adds a reply to a thread
// @Summary Reply to a thread
// @Tags forums
// @Accept json
// @Produce json
// @Param id path string true "Thread ID"
// @Param request body dto.CommentRequest true "Reply content"
// @Success 201 {object} dto.APIResponse{data=models.Comment}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.APIResponse "Thread not found"
// @Router /forums/threads/{id}/replies [post]
func (c *ForumController) ReplyToThread(ctx *gin.Context) {
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	authorID := req.AuthorID
	if authorID == "" {
		authorID = c.store.ViewerID()
	}

	reply, ok := c.store.ReplyToThread(ctx.Param("id"), authorID, req.Content)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrThreadNotFound, "Thread not found"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(reply))
}
