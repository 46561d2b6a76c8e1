// Package controllers handles HTTP request handling
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

// FeedController handles community feed operations
type FeedController struct {
	store  *demo.Store
	logger zerolog.Logger
}

// NewFeedController creates a new FeedController
func NewFeedController(store *demo.Store, logger zerolog.Logger) *FeedController {
	return &FeedController{store: store, logger: logger}
}

// ListPosts returns the feed
// @Summary List feed posts
// @Description Returns all feed posts, newest first
// @Tags feed
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.FeedPost}
// @Router /feed [get]
func (c *FeedController) ListPosts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().Posts))
}

// CreatePost creates a feed post
// @Summary Create a feed post
// @Description Creates a post authored by the current viewer and prepends it to the feed
// @Tags feed
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=models.FeedPost}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /feed [post]
func (c *FeedController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create post payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	post := c.store.CreatePost(req.Content, req.Tags, req.Media)
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(post))
}

// ReactToPost adds a reaction to a post
// @Summary React to a post
// @Tags feed
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.ReactRequest true "Reaction"
// @Success 200 {object} dto.APIResponse{data=models.FeedPost}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.APIResponse "Post not found"
// @Router /feed/{id}/reactions [post]
func (c *FeedController) ReactToPost(ctx *gin.Context) {
	var req dto.ReactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	post, ok := c.store.ReactToPost(ctx.Param("id"), req.Reaction)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrPostNotFound, "Post not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post))
}

// AddComment adds a comment to a post
// @Summary Comment on a post
// @Tags feed
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.CommentRequest true "Comment"
// @Success 201 {object} dto.APIResponse{data=models.Comment}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.APIResponse "Post not found"
// @Router /feed/{id}/comments [post]
func (c *FeedController) AddComment(ctx *gin.Context) {
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	authorID := req.AuthorID
	if authorID == "" {
		authorID = c.store.ViewerID()
	}

	comment, ok := c.store.AddComment(ctx.Param("id"), authorID, req.Content)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrPostNotFound, "Post not found"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(comment))
}
