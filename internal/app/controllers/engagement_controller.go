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

// EngagementController handles badges, challenges, perks and the leaderboard
type EngagementController struct {
	store  *demo.Store
	logger zerolog.Logger
}

// NewEngagementController creates a new EngagementController
func NewEngagementController(store *demo.Store, logger zerolog.Logger) *EngagementController {
	return &EngagementController{store: store, logger: logger}
}

// Overview returns the engagement dashboard payload
// @Summary Engagement overview
// @Description Returns badges, leaderboard, challenges, perks and volunteer opportunities in one payload
// @Tags engagement
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /engagement [get]
func (c *EngagementController) Overview(ctx *gin.Context) {
	snapshot := c.store.Snapshot()
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{
		"badges":      snapshot.Badges,
		"leaderboard": snapshot.Leaderboard,
		"challenges":  snapshot.Challenges,
		"perks":       snapshot.Perks,
		"volunteer":   snapshot.Volunteer,
	}))
}

// EarnBadge records an earned badge
// @Summary Earn a badge
// @Tags engagement
// @Accept json
// @Produce json
// @Param request body dto.EarnBadgeRequest true "Badge details"
// @Success 201 {object} dto.APIResponse{data=models.Badge}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /engagement/badges [post]
func (c *EngagementController) EarnBadge(ctx *gin.Context) {
	var req dto.EarnBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	tier := req.Tier
	if tier == "" {
		tier = models.TierBronze
	}

	badge := c.store.EarnBadge(demo.BadgeInput{
		Name:        req.Name,
		Description: req.Description,
		Tier:        tier,
	})
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(badge))
}

// SubmitChallengeProof submits proof for a challenge
// @Summary Submit challenge proof
// @Description Credits the challenge leaderboard leader with the score boost and bumps the submission counter
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body dto.ChallengeProofRequest true "Score boost"
// @Success 200 {object} dto.APIResponse{data=models.Challenge}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.APIResponse "Challenge not found"
// @Router /engagement/challenges/{id}/proof [post]
func (c *EngagementController) SubmitChallengeProof(ctx *gin.Context) {
	var req dto.ChallengeProofRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	challenge, ok := c.store.SubmitChallengeProof(ctx.Param("id"), req.ScoreBoost)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrChallengeNotFound, "Challenge not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(challenge))
}

// ClaimPerk marks a perk claimed
// @Summary Claim a perk
// @Description Marks a partner perk claimed. Idempotent.
// @Tags engagement
// @Produce json
// @Param id path string true "Perk ID"
// @Success 200 {object} dto.APIResponse{data=models.Perk}
// @Failure 404 {object} dto.APIResponse "Perk not found"
// @Router /engagement/perks/{id}/claim [post]
func (c *EngagementController) ClaimPerk(ctx *gin.Context) {
	perk, ok := c.store.ClaimPerk(ctx.Param("id"))
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrPerkNotFound, "Perk not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(perk))
}
