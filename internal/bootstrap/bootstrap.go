package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/koprumezun/mezunhub/internal/app/controllers"
	appRoutes "github.com/koprumezun/mezunhub/internal/app/routes"
	"github.com/koprumezun/mezunhub/internal/config"
	"github.com/koprumezun/mezunhub/internal/demo"
	"github.com/koprumezun/mezunhub/internal/messaging"
	appMiddleware "github.com/koprumezun/mezunhub/internal/middleware"
	"github.com/koprumezun/mezunhub/internal/pkg/helpers"
	"github.com/koprumezun/mezunhub/internal/pkg/logger"
	"github.com/koprumezun/mezunhub/internal/pkg/websocket"
	"github.com/koprumezun/mezunhub/internal/provision"
	"github.com/koprumezun/mezunhub/internal/settings"
	"github.com/koprumezun/mezunhub/internal/storage"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store       *demo.Store
	Settings    *settings.Store
	KV          storage.KV
	Hub         *websocket.Hub
	Publisher   messaging.Publisher
	Provisioner provision.Provisioner
	Controllers appRoutes.Controllers
	Logger      zerolog.Logger

	StorageBackend string
	BootWarning    string
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage builds the key-value backend selected by configuration.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (storage.KV, error) {
	switch strings.ToLower(cfg.Storage.Backend) {
	case "file":
		kv, err := storage.NewFileKV(cfg.Storage.Dir)
		if err != nil {
			return nil, fmt.Errorf("initializing file storage: %w", err)
		}
		lgr.Info().Str("dir", cfg.Storage.Dir).Msg("File storage configured")
		return kv, nil

	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		kv, err := storage.NewRedisKV(ctx, storage.RedisConfig{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("initializing redis storage: %w", err)
		}
		lgr.Info().Str("addr", cfg.Storage.RedisAddr).Msg("Redis storage configured")
		return kv, nil

	case "memory":
		lgr.Info().Msg("In-memory storage configured, state is lost on restart")
		return storage.NewMemoryKV(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// themeLogger applies theme changes by logging them; the server has no UI of
// its own, clients pick the preset up from the settings endpoint.
type themeLogger struct {
	logger zerolog.Logger
}

func (t themeLogger) ApplyTheme(preset settings.ThemePreset, mode settings.ThemeMode) {
	t.logger.Debug().Str("preset", preset.ID).Str("mode", string(mode)).Msg("Theme applied")
}

// BuildDependencies wires the store, persistence, change feed and controllers.
func BuildDependencies(cfg *config.Config, kv storage.KV, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		KV:             kv,
		Logger:         lgr,
		StorageBackend: strings.ToLower(cfg.Storage.Backend),
	}

	deps.Store = demo.NewStore(demo.Config{
		AcceptProbability:  cfg.Demo.AcceptProbability,
		ApprovalDelay:      helpers.ParseDuration(cfg.Demo.ApprovalDelay, demo.DefaultApprovalDelay),
		MentorResolveDelay: helpers.ParseDuration(cfg.Demo.MentorResolveDelay, demo.DefaultMentorResolveDelay),
		Sink:               demo.NewKVSink(kv),
		Logger:             lgr,
	})

	if cfg.Demo.BootstrapURL != "" {
		deps.Provisioner = provision.NewHTTPProvisioner(cfg.Demo.BootstrapURL)
	} else {
		deps.Provisioner = provision.StaticProvisioner{}
	}

	// Restore whatever a prior run persisted; the remote fetch is skipped
	// when a viewer identity survived.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if restored, ok := demo.Restore(ctx, kv); ok {
		deps.Store.Hydrate(restored.Partial())
		lgr.Info().Str("viewerId", restored.ViewerID).Msg("Restored persisted demo state")
	}

	if deps.Store.ViewerID() == "" {
		snapshot, warning, err := deps.Provisioner.FetchSnapshot(ctx)
		if err != nil {
			// Degraded start: fall back to the seed dataset and surface the
			// problem as a bootstrap warning instead of failing.
			lgr.Warn().Err(err).Msg("Bootstrap fetch failed, falling back to seed dataset")
			snapshot, _, _ = provision.StaticProvisioner{}.FetchSnapshot(ctx)
			warning = "bootstrap source unavailable, using built-in dataset"
		}
		deps.Store.Hydrate(snapshot)
		deps.BootWarning = warning
		lgr.Info().Str("viewerId", deps.Store.ViewerID()).Msg("Hydrated demo state from bootstrap source")
	}

	deps.Settings = settings.NewStore(ctx, kv, themeLogger{logger: lgr}, lgr)

	deps.Hub = websocket.NewHub(lgr)
	deps.Store.Subscribe(deps.Hub.Broadcast)

	if cfg.Messaging.NATSURL != "" {
		publisher, err := messaging.NewNATSPublisher(cfg.Messaging.NATSURL, lgr)
		if err != nil {
			return nil, fmt.Errorf("initializing NATS publisher: %w", err)
		}
		deps.Publisher = publisher
		deps.Store.Subscribe(publisher.Publish)
		lgr.Info().Str("url", cfg.Messaging.NATSURL).Msg("NATS change-event publisher configured")
	} else {
		deps.Publisher = messaging.NoopPublisher{}
	}

	demoController := appControllers.NewDemoController(
		deps.Store,
		deps.Provisioner,
		deps.Hub,
		deps.StorageBackend,
		deps.BootWarning,
		lgr,
	)

	deps.Controllers = appRoutes.Controllers{
		Demo:        demoController,
		Feed:        appControllers.NewFeedController(deps.Store, lgr),
		Forum:       appControllers.NewForumController(deps.Store, lgr),
		Message:     appControllers.NewMessageController(deps.Store, lgr),
		Group:       appControllers.NewGroupController(deps.Store, lgr),
		Mentoring:   appControllers.NewMentoringController(deps.Store, lgr),
		Career:      appControllers.NewCareerController(deps.Store, lgr),
		Event:       appControllers.NewEventController(deps.Store, lgr),
		Fundraising: appControllers.NewFundraisingController(deps.Store, lgr),
		Engagement:  appControllers.NewEngagementController(deps.Store, lgr),
		Profile:     appControllers.NewProfileController(deps.Store, lgr),
		Settings:    appControllers.NewSettingsController(deps.Settings, lgr),
		WebSocket:   websocket.NewHandler(deps.Hub, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
