package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/koprumezun/mezunhub/internal/app/models/dto"
	"github.com/koprumezun/mezunhub/internal/demo"
	"github.com/koprumezun/mezunhub/internal/provision"
	"github.com/koprumezun/mezunhub/internal/seed"
)

// ClientCounter reports how many change-feed clients are connected.
type ClientCounter interface {
	ClientCount() int
}

// DemoController handles engine-level operations: bootstrap, snapshot access,
// reset and status.
type DemoController struct {
	store          *demo.Store
	provisioner    provision.Provisioner
	clients        ClientCounter
	storageBackend string
	bootWarning    string
	logger         zerolog.Logger
}

// NewDemoController creates a new DemoController. bootWarning carries any
// non-fatal problem from the startup hydration.
func NewDemoController(
	store *demo.Store,
	provisioner provision.Provisioner,
	clients ClientCounter,
	storageBackend string,
	bootWarning string,
	logger zerolog.Logger,
) *DemoController {
	return &DemoController{
		store:          store,
		provisioner:    provisioner,
		clients:        clients,
		storageBackend: storageBackend,
		bootWarning:    bootWarning,
		logger:         logger,
	}
}

// HealthCheck reports liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /health [get]
func (c *DemoController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "ok"})
}

// Bootstrap returns the snapshot a client hydrates from
// @Summary Bootstrap snapshot
// @Description Returns the full dataset plus non-fatal metadata such as a degraded-source warning
// @Tags demo
// @Produce json
// @Success 200 {object} dto.BootstrapResponse
// @Router /bootstrap [get]
func (c *DemoController) Bootstrap(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.BootstrapResponse{
		Data: c.store.Snapshot(),
		Meta: dto.BootstrapMeta{Warning: c.bootWarning},
	})
}

// GetState returns the current snapshot
// @Summary Current state
// @Tags demo
// @Produce json
// @Success 200 {object} dto.APIResponse{data=demo.Snapshot}
// @Router /state [get]
func (c *DemoController) GetState(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot()))
}

// HydrateState merges a partial snapshot into the store
// @Summary Hydrate state
// @Description Shallow-merges the provided collections into the current state; absent collections keep their values
// @Tags demo
// @Accept json
// @Produce json
// @Param request body demo.Snapshot true "Partial snapshot"
// @Success 200 {object} dto.APIResponse{data=demo.Snapshot}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /state [patch]
func (c *DemoController) HydrateState(ctx *gin.Context) {
	var partial demo.Snapshot
	if err := ctx.ShouldBindJSON(&partial); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	c.store.Hydrate(partial)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot()))
}

// Reset restores the seed dataset
// @Summary Reset the demo
// @Description Replaces the entire state with the built-in seed dataset
// @Tags demo
// @Produce json
// @Success 200 {object} dto.APIResponse{data=demo.Snapshot}
// @Router /demo/reset [post]
func (c *DemoController) Reset(ctx *gin.Context) {
	snapshot := seed.Snapshot()
	c.store.Reset(&snapshot)
	c.logger.Info().Msg("Demo state reset to seed dataset")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.store.Snapshot()))
}

// Refresh re-fetches the bootstrap snapshot and hydrates from it
// @Summary Refresh from the bootstrap source
// @Description Fetches a fresh snapshot from the configured source and merges it into the store
// @Tags demo
// @Produce json
// @Success 200 {object} dto.BootstrapResponse
// @Failure 502 {object} dto.APIResponse "Bootstrap source unavailable"
// @Router /demo/refresh [post]
func (c *DemoController) Refresh(ctx *gin.Context) {
	snapshot, warning, err := c.provisioner.FetchSnapshot(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to refresh bootstrap snapshot")
		ctx.JSON(http.StatusBadGateway, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Bootstrap source unavailable"),
		})
		return
	}

	c.store.Hydrate(snapshot)
	ctx.JSON(http.StatusOK, dto.BootstrapResponse{
		Data: c.store.Snapshot(),
		Meta: dto.BootstrapMeta{Warning: warning},
	})
}

// Status reports engine status
// @Summary Demo engine status
// @Tags demo
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DemoStatusResponse}
// @Router /demo/status [get]
func (c *DemoController) Status(ctx *gin.Context) {
	clients := 0
	if c.clients != nil {
		clients = c.clients.ClientCount()
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.DemoStatusResponse{
		ViewerID:       c.store.ViewerID(),
		Hydrated:       c.store.ViewerID() != "",
		StorageBackend: c.storageBackend,
		Clients:        clients,
		Warning:        c.bootWarning,
	}))
}

// ClientLog forwards a client-side log line into the server log
// @Summary Forward a client log line
// @Tags demo
// @Accept json
// @Produce json
// @Param request body dto.ClientLogRequest true "Log line"
// @Success 202 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /log [post]
func (c *DemoController) ClientLog(ctx *gin.Context) {
	var req dto.ClientLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	event := c.logger.Info()
	switch req.Level {
	case "debug":
		event = c.logger.Debug()
	case "warn":
		event = c.logger.Warn()
	case "error":
		event = c.logger.Error()
	}
	event.Fields(req.Fields).Str("source", "client").Msg(req.Message)

	ctx.JSON(http.StatusAccepted, dto.SuccessResponse{Message: "logged"})
}
