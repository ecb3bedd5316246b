package main

import (
	"log/slog"
	"time"

	"github.com/bihius/weather-app/internal/bootstrap"
	"github.com/bihius/weather-app/internal/config"
	"github.com/bihius/weather-app/internal/observability"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// App encapsulates application dependencies
type App struct {
	router   *gin.Engine
	api      huma.API
	logger   *slog.Logger
	services *bootstrap.Services
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	services, err := bootstrap.Build(cfg, observability.NewMetrics(), logger)
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Server.GinMode)
	app := newApp(services, logger)
	logger.Info("application initialized")
	return app, nil
}

func newApp(services *bootstrap.Services, logger *slog.Logger) *App {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	config := huma.DefaultConfig("Weather App API", "1.0.0")
	config.Info.Description = "Place search, normalized weather snapshots and favorites"
	config.Info.Contact = &huma.Contact{
		Name:  "API Support",
		Email: "weather-app@example.com",
	}
	config.Servers = []*huma.Server{
		{URL: "http://localhost:8080", Description: "Development server"},
	}

	app := &App{
		router:   router,
		api:      humagin.New(router, config),
		logger:   logger,
		services: services,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

func (app *App) Close() error {
	return app.services.Close()
}

// requestLogger tags every request with an id, echoed in the response, and
// logs one line when it completes.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set("request_id", id)

		start := time.Now()
		c.Next()

		logger.Info("request completed",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
