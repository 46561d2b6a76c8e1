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

// ProfileController handles the viewer's profile and data rights operations
type ProfileController struct {
	store  *demo.Store
	logger zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(store *demo.Store, logger zerolog.Logger) *ProfileController {
	return &ProfileController{store: store, logger: logger}
}

// GetViewer returns the viewer's profile
// @Summary Get the viewer profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.UserProfile}
// @Failure 404 {object} dto.APIResponse "Viewer not found"
// @Router /profile [get]
func (c *ProfileController) GetViewer(ctx *gin.Context) {
	viewer, ok := c.store.Viewer()
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrViewerNotFound, "Viewer profile not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(viewer))
}

// UpdateViewer patches the viewer's profile
// @Summary Update the viewer profile
// @Description Applies the provided fields to the viewer's profile; absent fields are left unchanged
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=models.UserProfile}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.APIResponse "Viewer not found"
// @Router /profile [patch]
func (c *ProfileController) UpdateViewer(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	viewer, ok := c.store.UpdateViewer(demo.ViewerPatch{
		Name:         req.Name,
		Title:        req.Title,
		Organization: req.Organization,
		Avatar:       req.Avatar,
		Bio:          req.Bio,
		Location:     req.Location,
		Industry:     req.Industry,
		Headline:     req.Headline,
		Skills:       req.Skills,
		Interests:    req.Interests,
		MentorStatus: req.MentorStatus,
	})
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrViewerNotFound, "Viewer profile not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(viewer))
}

// ExportData downloads the viewer's data export
// @Summary Export demo data
// @Description Serializes the full demo dataset as a JSON download
// @Tags profile
// @Produce json
// @Success 200 {string} string "JSON export"
// @Failure 500 {object} dto.APIResponse "Export failed"
// @Router /profile/export [get]
func (c *ProfileController) ExportData(ctx *gin.Context) {
	payload, err := c.store.ExportUserData()
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to export demo data")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="koprumezun-export.json"`)
	ctx.Data(http.StatusOK, "application/json", payload)
}

// DeleteAccount anonymizes the viewer's profile
// @Summary Delete the demo account
// @Description Anonymizes the viewer profile in place; collections keep their entries
// @Tags profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.UserProfile}
// @Failure 404 {object} dto.APIResponse "Viewer not found"
// @Router /profile [delete]
func (c *ProfileController) DeleteAccount(ctx *gin.Context) {
	viewer, ok := c.store.DeleteDemoUser()
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrViewerNotFound, "Viewer profile not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(viewer))
}

// ListDigitalCards returns issued membership cards
// @Summary List digital membership cards
// @Tags profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.DigitalCard}
// @Router /profile/cards [get]
func (c *ProfileController) ListDigitalCards(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().DigitalCards))
}
