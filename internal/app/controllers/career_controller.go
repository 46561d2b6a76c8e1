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

// CareerController handles job postings, applications and resume analysis
type CareerController struct {
	store  *demo.Store
	logger zerolog.Logger
}

// NewCareerController creates a new CareerController
func NewCareerController(store *demo.Store, logger zerolog.Logger) *CareerController {
	return &CareerController{store: store, logger: logger}
}

// ListJobs returns all job postings
// @Summary List job postings
// @Tags careers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.JobPosting}
// @Router /careers/jobs [get]
func (c *CareerController) ListJobs(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().Jobs))
}

// ListApplications returns the viewer's job applications
// @Summary List job applications
// @Tags careers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.JobApplication}
// @Router /careers/applications [get]
func (c *CareerController) ListApplications(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot().JobApplications))
}

// ApplyToJob applies the viewer to a job
// @Summary Apply to a job
// @Description Creates an application in applied status. Applying twice to the same job returns the existing application.
// @Tags careers
// @Produce json
// @Param id path string true "Job ID"
// @Success 201 {object} dto.APIResponse{data=models.JobApplication}
// @Router /careers/jobs/{id}/apply [post]
func (c *CareerController) ApplyToJob(ctx *gin.Context) {
	application := c.store.ApplyToJob(ctx.Param("id"))
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application))
}

// ToggleSaveJob flips the saved flag on a job
// @Summary Save or unsave a job
// @Tags careers
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.APIResponse{data=models.JobPosting}
// @Failure 404 {object} dto.APIResponse "Job not found"
// @Router /careers/jobs/{id}/save [post]
func (c *CareerController) ToggleSaveJob(ctx *gin.Context) {
	job, ok := c.store.ToggleSaveJob(ctx.Param("id"))
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrJobNotFound, "Job posting not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(job))
}

// AnalyzeResume runs the simulated resume review
// @Summary Analyze a resume
// @Description Produces a score between 70 and 94 with up to three recommended alumni profiles
// @Tags careers
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeResumeRequest true "Highlights and suggestions"
// @Success 201 {object} dto.APIResponse{data=models.ResumeAnalysis}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /careers/resume/analyze [post]
func (c *CareerController) AnalyzeResume(ctx *gin.Context) {
	var req dto.AnalyzeResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	analysis := c.store.AnalyzeResume(req.Highlights, req.Suggestions)
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(analysis))
}
