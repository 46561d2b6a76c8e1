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

// MentoringController handles mentor requests, matches and flash sessions
type MentoringController struct {
	store  *demo.Store
	logger zerolog.Logger
}

// NewMentoringController creates a new MentoringController
func NewMentoringController(store *demo.Store, logger zerolog.Logger) *MentoringController {
	return &MentoringController{store: store, logger: logger}
}

// ListMentors returns profiles offering mentorship
// @Summary List available mentors
// @Tags mentoring
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.UserProfile}
// @Router /mentoring/mentors [get]
func (c *MentoringController) ListMentors(ctx *gin.Context) {
	var mentors []models.UserProfile
	for _, user := range c.store.Snapshot().Users {
		if user.Role == models.RoleMentor || user.MentorStatus == models.MentorAvailable || user.MentorStatus == models.MentorLimited {
			mentors = append(mentors, user)
		}
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(mentors))
}

// ListRequests returns the viewer's mentor requests
// @Summary List mentor requests
// @Tags mentoring
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.MentorRequest}
// @Router /mentoring/requests [get]
func (c *MentoringController) ListRequests(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().MentorRequests))
}

// ListMatches returns the viewer's mentorship matches
// @Summary List mentorship matches
// @Tags mentoring
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipMatch}
// @Router /mentoring/matches [get]
func (c *MentoringController) ListMatches(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().Mentorships))
}

// RequestMentor creates a pending mentor request
// @Summary Request a mentor
// @Description Creates a pending request that resolves automatically after a short delay, to accepted (usually) or scheduled.
// @Tags mentoring
// @Accept json
// @Produce json
// @Param request body dto.MentorRequestRequest true "Mentor and goals"
// @Success 201 {object} dto.APIResponse{data=models.MentorRequest}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /mentoring/requests [post]
func (c *MentoringController) RequestMentor(ctx *gin.Context) {
	var req dto.MentorRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid mentor request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	request := c.store.RequestMentor(req.MentorID, req.Goals)
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(request))
}

// CompleteRequest resolves a pending mentor request immediately
// @Summary Resolve a mentor request
// @Description Resolves a pending request without waiting for the automatic timer. Idempotent when already resolved.
// @Tags mentoring
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.APIResponse{data=models.MentorRequest}
// @Failure 404 {object} dto.APIResponse "Request not found"
// @Router /mentoring/requests/{id}/complete [post]
func (c *MentoringController) CompleteRequest(ctx *gin.Context) {
	request, ok := c.store.CompleteMentorRequest(ctx.Param("id"))
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("Mentor request not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(request))
}

// ListFlashSessions returns scheduled flash sessions
// @Summary List flash sessions
// @Tags mentoring
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.FlashSession}
// @Router /mentoring/flash-sessions [get]
func (c *MentoringController) ListFlashSessions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().FlashSessions))
}

// ScheduleFlashSession books a short mentoring slot
// @Summary Schedule a flash session
// @Description Books a ten-minute session one hour from now
// @Tags mentoring
// @Accept json
// @Produce json
// @Param request body dto.FlashSessionRequest true "Mentor and topic"
// @Success 201 {object} dto.APIResponse{data=models.FlashSession}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /mentoring/flash-sessions [post]
func (c *MentoringController) ScheduleFlashSession(ctx *gin.Context) {
	var req dto.FlashSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session := c.store.ScheduleFlashSession(req.MentorID, req.Topic)
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(session))
}
