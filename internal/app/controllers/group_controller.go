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

// GroupController handles group membership and application operations
type GroupController struct {
	store  *demo.Store
	logger zerolog.Logger
}

// NewGroupController creates a new GroupController
func NewGroupController(store *demo.Store, logger zerolog.Logger) *GroupController {
	return &GroupController{store: store, logger: logger}
}

// ListGroups returns all groups
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Group}
// @Router /groups [get]
func (c *GroupController) ListGroups(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().Groups))
}

// ListApplications returns the viewer's group applications
// @Summary List group applications
// @Tags groups
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.GroupApplication}
// @Router /groups/applications [get]
func (c *GroupController) ListApplications(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().GroupApplications))
}

// JoinGroup makes the viewer a member directly
// @Summary Join a group
// @Description Joins a group without an application. Idempotent when already a member.
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} dto.APIResponse{data=models.Group}
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /groups/{id}/join [post]
func (c *GroupController) JoinGroup(ctx *gin.Context) {
	group, ok := c.store.JoinGroup(ctx.Param("id"))
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrGroupNotFound, "Group not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(group))
}

// LeaveGroup drops the viewer's membership
// @Summary Leave a group
// @Description Leaves a group. Any pending application for the group is withdrawn.
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} dto.APIResponse{data=models.Group}
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /groups/{id}/leave [post]
func (c *GroupController) LeaveGroup(ctx *gin.Context) {
	group, ok := c.store.LeaveGroup(ctx.Param("id"))
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrGroupNotFound, "Group not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(group))
}

// SubmitApplication submits a membership application
// @Summary Apply for group membership
// @Description Creates a pending application that is approved automatically after a short delay. A new submission supersedes any prior pending application for the same group.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body dto.GroupApplicationRequest true "Applicant contact details"
// @Success 201 {object} dto.APIResponse{data=models.GroupApplication}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /groups/{id}/applications [post]
func (c *GroupController) SubmitApplication(ctx *gin.Context) {
	var req dto.GroupApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid group application payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	application, ok := c.store.SubmitGroupApplication(demo.GroupApplicationInput{
		GroupID: ctx.Param("id"),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrGroupNotFound, "Group not found"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application))
}

// ApproveApplication resolves a pending application immediately
// @Summary Approve a group application
// @Description Approves a pending application without waiting for the automatic timer. Idempotent when already approved.
// @Tags groups
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.GroupApplication}
// @Failure 404 {object} dto.APIResponse "Application not found"
// @Router /groups/applications/{id}/approve [post]
func (c *GroupController) ApproveApplication(ctx *gin.Context) {
	application, ok := c.store.ApproveGroupApplication(ctx.Param("id"))
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("Application not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}
