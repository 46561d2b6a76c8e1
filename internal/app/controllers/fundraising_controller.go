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

// FundraisingController handles campaign and donation operations
type FundraisingController struct {
	store  *demo.Store
	logger zerolog.Logger
}

// NewFundraisingController creates a new FundraisingController
func NewFundraisingController(store *demo.Store, logger zerolog.Logger) *FundraisingController {
	return &FundraisingController{store: store, logger: logger}
}

// ListCampaigns returns all fundraising campaigns
// @Summary List campaigns
// @Tags fundraising
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.FundraisingCampaign}
// @Router /fundraising/campaigns [get]
func (c *FundraisingController) ListCampaigns(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().Campaigns))
}

// CreateCampaign starts a new campaign
// @Summary Create a campaign
// @Tags fundraising
// @Accept json
// @Produce json
// @Param request body dto.CreateCampaignRequest true "Campaign details"
// @Success 201 {object} dto.APIResponse{data=models.FundraisingCampaign}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /fundraising/campaigns [post]
func (c *FundraisingController) CreateCampaign(ctx *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create campaign payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	campaign := c.store.CreateCampaign(demo.CampaignInput{
		Name:        req.Name,
		Description: req.Description,
		Goal:        req.Goal,
	})
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(campaign))
}

// Donate records a donation to a campaign
// @Summary Donate to a campaign
// @Description Adds the amount to the campaign total and recomputes progress. The amount must be positive.
// @Tags fundraising
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body dto.DonationRequest true "Donation amount"
// @Success 200 {object} dto.APIResponse{data=models.FundraisingCampaign}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or non-positive amount"
// @Failure 404 {object} dto.APIResponse "Campaign not found"
// @Router /fundraising/campaigns/{id}/donate [post]
func (c *FundraisingController) Donate(ctx *gin.Context) {
	var req dto.DonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	if req.Amount <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrInvalidAmount, "Donation amount must be positive"))
		return
	}

	campaign, ok := c.store.DonateToCampaign(ctx.Param("id"), req.Amount)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrCampaignNotFound, "Campaign not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(campaign))
}
