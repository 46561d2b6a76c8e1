package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/koprumezun/mezunhub/internal/app/models/dto"
	"github.com/koprumezun/mezunhub/internal/settings"
)

// SettingsController handles viewer preference operations
type SettingsController struct {
	settings *settings.Store
	logger   zerolog.Logger
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(store *settings.Store, logger zerolog.Logger) *SettingsController {
	return &SettingsController{settings: store, logger: logger}
}

// GetSettings returns the current preferences
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=settings.State}
// @Router /settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.settings.State()))
}

// UpdateSettings patches the preferences
// @Summary Update settings
// @Description Applies the provided preference fields; absent fields are left unchanged
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Preference fields"
// @Success 200 {object} dto.APIResponse{data=settings.State}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /settings [patch]
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid settings payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	patch := settings.Patch{
		ThemePresetID:      req.ThemePresetID,
		OnboardingComplete: req.OnboardingComplete,
	}
	if req.Language != nil {
		language := settings.Language(*req.Language)
		patch.Language = &language
	}
	if req.ThemeMode != nil {
		mode := settings.ThemeMode(*req.ThemeMode)
		patch.ThemeMode = &mode
	}

	state := c.settings.Update(ctx.Request.Context(), patch)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(state))
}

// ResetSettings restores default preferences
// @Summary Reset settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=settings.State}
// @Router /settings/reset [post]
func (c *SettingsController) ResetSettings(ctx *gin.Context) {
	state := c.settings.Reset(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(state))
}

// ListThemePresets returns the theme preset catalog
// @Summary List theme presets
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]settings.ThemePreset}
// @Router /settings/themes [get]
func (c *SettingsController) ListThemePresets(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings.Presets()))
}
