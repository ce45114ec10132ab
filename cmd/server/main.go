// Package main is the entry point for the flight alert service.
//
//	@title						Flight Alert API
//	@version					1.0.0
//	@description				Airport search, debounced origin/destination search sessions, and price drop alerts.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-alert/flight-alert-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-alert/flight-alert-service/docs"

	// Application layers
	"github.com/flight-alert/flight-alert-service/internal/adapter/airportapi"
	"github.com/flight-alert/flight-alert-service/internal/adapter/cache"
	alerthttp "github.com/flight-alert/flight-alert-service/internal/adapter/http"
	"github.com/flight-alert/flight-alert-service/internal/adapter/http/middleware"
	"github.com/flight-alert/flight-alert-service/internal/config"
	"github.com/flight-alert/flight-alert-service/internal/domain"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/logger"
	"github.com/flight-alert/flight-alert-service/internal/usecase/alert"
	"github.com/flight-alert/flight-alert-service/internal/usecase/locationsearch"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-alert",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("airport_api", cfg.AirportAPI.BaseURL).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log)

	// Setup routes
	app := setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, app, log)
}

// application holds the resources released on shutdown.
type application struct {
	sessions *alerthttp.SessionRegistry
	cache    *cache.RedisCache
}

// setupRoutes wires the application layers and configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) *application {
	app := &application{}

	// Upstream airport search, optionally behind the Redis cache
	var searcher domain.AirportSearcher = airportapi.NewClient(airportapi.Config{
		BaseURL: cfg.AirportAPI.BaseURL,
		Timeout: cfg.AirportAPI.Timeout,
	}, airportapi.WithLogger(log))

	if cfg.CacheEnabled() {
		redisCache, err := cache.NewRedisCache(context.Background(), cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			log.Warn().Err(err).Msg("Search cache unavailable, continuing without it")
		} else {
			app.cache = redisCache
			searcher = cache.NewSearcher(searcher, redisCache, cfg.Cache.TTL, log)
			log.Info().Str("addr", cfg.Cache.RedisAddr).Dur("ttl", cfg.Cache.TTL).Msg("Search cache enabled")
		}
	}

	// One debounced search controller per session
	searchConfig := &locationsearch.Config{
		Debounce: cfg.Search.Debounce,
		Limit:    cfg.Search.Limit,
	}
	app.sessions = alerthttp.NewSessionRegistry(func(sessionID string) *locationsearch.Controller {
		return locationsearch.NewController(searcher, searchConfig,
			locationsearch.WithLogger(log.WithSession(sessionID)),
		)
	}, log)

	alerts := alert.NewService(alert.WithLogger(log))

	// Initialize handler
	handler := alerthttp.NewHandler(searcher, app.sessions, alerts,
		alerthttp.WithMinDropPercent(cfg.Alerts.MinDropPercent),
		alerthttp.WithHandlerLogger(log),
	)

	alerthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return app
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, app *application, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	// Sessions wait for their in-flight searches
	app.sessions.CloseAll()

	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing search cache")
		}
	}

	log.Info().Msg("Server stopped")
}
