package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/talha-mahmood/Linkedin-list/docs"
	"github.com/talha-mahmood/Linkedin-list/internal/api/handler"
	"github.com/talha-mahmood/Linkedin-list/internal/api/middleware"
	"github.com/talha-mahmood/Linkedin-list/internal/core/service"
	"github.com/talha-mahmood/Linkedin-list/internal/extractor"
	"github.com/talha-mahmood/Linkedin-list/internal/infrastructure/bus"
	mongostore "github.com/talha-mahmood/Linkedin-list/internal/infrastructure/db/mongo"
	redisstore "github.com/talha-mahmood/Linkedin-list/internal/infrastructure/db/redis"
)

// RouterConfig carries the knobs the router needs beyond its storage handles.
type RouterConfig struct {
	JWTSecret string
	// DevMode relaxes auth: a missing Bearer token is tolerated so the
	// extension keeps working before its first login.
	DevMode  bool
	TokenTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, broadcasts *bus.Bus, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("categorizer"))

	// --- Storage adapters ---
	categoryRepo := mongostore.NewCategoryRepository(db)
	connectionRepo := mongostore.NewConnectionRepository(db)
	settingsRepo := mongostore.NewSettingsRepository(db)
	sessionStore := redisstore.NewSessionStore(rdb)
	handoffStore := redisstore.NewHandoffStore(rdb)

	// --- Services ---
	categoryService := service.NewCategoryService(categoryRepo, connectionRepo, broadcasts, log)
	connectionService := service.NewConnectionService(connectionRepo, broadcasts, log)
	transferService := service.NewTransferService(categoryRepo, connectionRepo, settingsRepo, broadcasts, log)
	syncService := service.NewSyncService(connectionRepo, sessionStore, broadcasts, cfg.JWTSecret, cfg.TokenTTL, log)
	settingsService := service.NewSettingsService(settingsRepo, log)

	// --- Handlers ---
	categoryHandler := handler.NewCategoryHandler(categoryService)
	connectionHandler := handler.NewConnectionHandler(connectionService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	sessionHandler := handler.NewSessionHandler(syncService)
	transferHandler := handler.NewTransferHandler(transferService)
	messageHandler := handler.NewMessageHandler(syncService, transferService, handoffStore, log)
	eventsHandler := handler.NewEventsHandler(broadcasts, log)
	extractHandler := handler.NewExtractHandler(extractor.New())

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- API routes ---
	// The message endpoint carries the login action, and the page adapter
	// extracts and listens before any login happens, so these three stay
	// outside the auth group.
	v1 := e.Group("/v1")
	v1.POST("/messages", messageHandler.Dispatch)
	v1.GET("/events", eventsHandler.Stream)
	v1.POST("/extract", extractHandler.Extract)

	protected := e.Group("/v1", middleware.Auth(cfg.JWTSecret, cfg.DevMode))

	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Create)
	protected.PUT("/categories/:id", categoryHandler.Update)
	protected.DELETE("/categories/:id", categoryHandler.Delete)

	protected.GET("/connections", connectionHandler.List)
	protected.PUT("/connections/:id", connectionHandler.Save)

	protected.GET("/settings", settingsHandler.Get)
	protected.PUT("/settings", settingsHandler.Update)

	protected.GET("/session", sessionHandler.Get)
	protected.GET("/export/backup", transferHandler.Backup)

	return e
}
