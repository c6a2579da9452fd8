package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/daybook/events-api/internal/api/handler"
	"github.com/daybook/events-api/internal/api/middleware"
	"github.com/daybook/events-api/internal/core/ports"
	"github.com/daybook/events-api/internal/core/service"
	"github.com/daybook/events-api/internal/pkg/config"
)

// Dependencies carries everything the router needs. The storage backend and
// denylist are chosen by the caller; the router only wires them together.
type Dependencies struct {
	Config   *config.Config
	Users    ports.UserRepository
	Events   ports.EventRepository
	Denylist service.TokenDenylist

	// Mongo and Redis are nil unless the corresponding backend is configured;
	// the readiness probe checks whichever are present.
	Mongo *mongo.Database
	Redis *redis.Client

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("events"))

	// --- Dependencies ---
	authService := service.NewAuthService(deps.Users, deps.Denylist, deps.Config.JWTSecret, deps.Config.TokenTTL, deps.Log)
	eventService := service.NewEventService(deps.Events, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)
	authMiddleware := middleware.Auth(deps.Config.JWTSecret, deps.Denylist, deps.Log)

	// --- User routes ---
	e.POST("/api/users/register", authHandler.Register)
	e.POST("/api/users/login", authHandler.Login)
	e.POST("/api/users/logout", authHandler.Logout, authMiddleware)
	e.GET("/api/users/me", authHandler.Me, authMiddleware)

	// --- Event routes (bearer token required) ---
	events := e.Group("/api/events", authMiddleware)
	events.POST("", eventHandler.Create)
	events.GET("", eventHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
