package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight alert API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware
// applied to the versioned API group.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *Handler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	api.GET("/airports", h.SearchAirports)

	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession)
	sessions.DELETE("/:id", h.DeleteSession)
	sessions.PUT("/:id/fields/:field", h.UpdateFieldText)
	sessions.DELETE("/:id/fields/:field", h.ClearFieldText)
	sessions.PUT("/:id/active", h.SetActiveField)
	sessions.POST("/:id/refresh", h.RefreshSession)
	sessions.POST("/:id/selection", h.SelectAirport)
	sessions.POST("/:id/alerts", h.CreateSessionAlert)

	alerts := api.Group("/alerts")
	alerts.GET("", h.ListAlerts)
	alerts.GET("/:id", h.GetAlert)
	alerts.DELETE("/:id", h.DeleteAlert)
}
