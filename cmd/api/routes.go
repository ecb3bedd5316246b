package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(app.api, huma.Operation{
		OperationID: "search-places",
		Method:      http.MethodGet,
		Path:        "/places",
		Summary:     "Search places",
		Description: "Resolve a free-text query into ranked, deduplicated places. Queries shorter than two characters return no places.",
		Tags:        []string{"location"},
	}, app.handleSearchPlaces)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-weather",
		Method:      http.MethodGet,
		Path:        "/weather",
		Summary:     "Get weather snapshot",
		Description: "Current conditions and a five day forecast, converted to the requested or saved temperature unit",
		Tags:        []string{"weather"},
	}, app.handleGetWeather)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-icon-path",
		Method:      http.MethodGet,
		Path:        "/icons/path",
		Summary:     "Resolve icon asset",
		Description: "Map any icon name, legacy or canonical, to its themed asset path",
		Tags:        []string{"icons"},
	}, app.handleIconPath)

	huma.Register(app.api, huma.Operation{
		OperationID: "list-favorites",
		Method:      http.MethodGet,
		Path:        "/favorites",
		Summary:     "List favorites",
		Tags:        []string{"favorites"},
	}, app.handleListFavorites)

	huma.Register(app.api, huma.Operation{
		OperationID: "toggle-favorite",
		Method:      http.MethodPost,
		Path:        "/favorites/toggle",
		Summary:     "Toggle favorite",
		Description: "Add the place to favorites, or remove it if it is already one",
		Tags:        []string{"favorites"},
	}, app.handleToggleFavorite)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/settings",
		Summary:     "Get settings",
		Tags:        []string{"settings"},
	}, app.handleGetSettings)

	huma.Register(app.api, huma.Operation{
		OperationID: "update-settings",
		Method:      http.MethodPut,
		Path:        "/settings",
		Summary:     "Update settings",
		Tags:        []string{"settings"},
	}, app.handleUpdateSettings)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger UI backed by the OpenAPI document huma serves
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		if c.Param("any") == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/openapi.json"))(c)
	})
}
