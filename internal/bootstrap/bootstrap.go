package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/AnhTuano/CNTTK23M/internal/app/auth"
	appControllers "github.com/AnhTuano/CNTTK23M/internal/app/controllers"
	appRepos "github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	appRoutes "github.com/AnhTuano/CNTTK23M/internal/app/routes"
	appServices "github.com/AnhTuano/CNTTK23M/internal/app/services"
	"github.com/AnhTuano/CNTTK23M/internal/config"
	appMiddleware "github.com/AnhTuano/CNTTK23M/internal/middleware"
	pkgAuth "github.com/AnhTuano/CNTTK23M/internal/pkg/auth"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/logger"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/scheduler"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/websocket"
	"github.com/AnhTuano/CNTTK23M/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store     *appRepos.Store
	Repos     *appRepos.Repositories
	Scheduler *scheduler.Scheduler
	Hub       *websocket.Hub
	WSHandler *websocket.Handler

	JWTService   *pkgAuth.JWTService
	AuthzService *appAuth.AuthorizationService

	AuthService         appServices.AuthService
	UserService         appServices.UserService
	PostService         appServices.PostService
	DocumentService     appServices.DocumentService
	MemoryService       appServices.MemoryService
	ChatService         appServices.ChatService
	NotificationService appServices.NotificationService
	ReportService       appServices.ReportService
	BadgeService        appServices.BadgeService
	ConfigService       appServices.ConfigService
	StatsService        appServices.StatsService
	BackupService       appServices.BackupService

	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	PostController         *appControllers.PostController
	DocumentController     *appControllers.DocumentController
	MemoryController       *appControllers.MemoryController
	ChatController         *appControllers.ChatController
	NotificationController *appControllers.NotificationController
	ReportController       *appControllers.ReportController
	BadgeController        *appControllers.BadgeController
	AdminController        *appControllers.AdminController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger

	// StopNotices halts the periodic system notification cycle
	StopNotices func()
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

// SetupStore creates the in-memory store and loads seed data.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Store, error) {
	store := appRepos.NewStore()
	if err := seed.Load(store, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to load seed data")
		return nil, err
	}
	return store, nil
}

// BuildDependencies initializes repositories, services and controllers
// over the shared store, starts the websocket hub and the periodic
// system notification cycle.
func BuildDependencies(cfg *config.Config, store *appRepos.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: store, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store)
	deps.Scheduler = scheduler.New()

	deps.Hub = websocket.NewHub(lgr)
	go deps.Hub.Run()
	deps.WSHandler = websocket.NewHandler(deps.Hub, deps.Repos.ChatRepository, lgr)

	deps.AuthzService = appAuth.NewAuthorizationService()
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  config.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: config.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository, deps.Scheduler, lgr)
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.PostRepository,
		deps.Repos.DocumentRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.PostRepository,
		deps.Repos.DocumentRepository,
		deps.AuthzService,
		lgr,
	)
	deps.PostService = appServices.NewPostService(
		deps.Repos.PostRepository,
		deps.Repos.UserRepository,
		deps.Repos.ConfigRepository,
		deps.AuthzService,
		deps.NotificationService,
		lgr,
	)
	deps.DocumentService = appServices.NewDocumentService(deps.Repos.DocumentRepository, deps.AuthzService, lgr)
	deps.MemoryService = appServices.NewMemoryService(deps.Repos.MemoryRepository, deps.AuthzService, lgr)
	deps.ChatService = appServices.NewChatService(
		deps.Repos.ChatRepository,
		deps.Repos.UserRepository,
		deps.Hub,
		deps.Scheduler,
		lgr,
	)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.ReportRepository,
		deps.Repos.PostRepository,
		deps.Repos.DocumentRepository,
		deps.AuthzService,
		lgr,
	)
	deps.BadgeService = appServices.NewBadgeService(deps.Repos.BadgeRepository, deps.AuthzService, lgr)
	deps.ConfigService = appServices.NewConfigService(deps.Repos.ConfigRepository, deps.AuthzService, lgr)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.UserRepository,
		deps.Repos.PostRepository,
		deps.Repos.DocumentRepository,
		deps.Repos.MemoryRepository,
		deps.Repos.ReportRepository,
		deps.AuthzService,
		lgr,
	)
	deps.BackupService = appServices.NewBackupService(store, deps.AuthzService, lgr)

	deps.StopNotices = deps.NotificationService.StartSystemNotices()

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.PostController = appControllers.NewPostController(deps.PostService, lgr)
	deps.DocumentController = appControllers.NewDocumentController(deps.DocumentService, lgr)
	deps.MemoryController = appControllers.NewMemoryController(deps.MemoryService, lgr)
	deps.ChatController = appControllers.NewChatController(deps.ChatService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService, lgr)
	deps.ReportController = appControllers.NewReportController(deps.ReportService, lgr)
	deps.BadgeController = appControllers.NewBadgeController(deps.BadgeService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.ConfigService, deps.StatsService, deps.BackupService, lgr)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.PostController,
		deps.DocumentController,
		deps.MemoryController,
		deps.ChatController,
		deps.NotificationController,
		deps.ReportController,
		deps.BadgeController,
		deps.AdminController,
		deps.WSHandler,
		deps.AuthMiddleware,
		appMiddleware.Maintenance(deps.Repos.ConfigRepository),
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
