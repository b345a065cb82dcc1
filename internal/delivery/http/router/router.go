// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"journal/internal/delivery/http/middleware"
	"journal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds everything the router wires into the echo server.
type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	EntryHandler         *handler.EntryHandler
	InsightHandler       *handler.InsightHandler
	TranscriptionHandler *handler.TranscriptionHandler
	AuthMiddleware       *middleware.AuthMiddleware
	RequestIDMiddleware  *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.GET("/profile", r.params.AuthHandler.Profile, r.params.AuthMiddleware.RequireAuth)
	}

	// Journal entries require authentication
	entryGroup := e.Group("/entries")
	entryGroup.Use(r.params.AuthMiddleware.RequireAuth)
	{
		entryGroup.POST("", r.params.EntryHandler.Create)
		entryGroup.GET("", r.params.EntryHandler.List)
		entryGroup.GET("/:id", r.params.EntryHandler.Get)
		entryGroup.DELETE("/:id", r.params.EntryHandler.Delete)
	}

	// Insights personalize output when logged in but do not require it
	insightGroup := e.Group("/insights")
	insightGroup.Use(r.params.AuthMiddleware.OptionalAuth)
	{
		insightGroup.GET("/summary", r.params.InsightHandler.Summary)
	}

	// Audio transcription relay
	e.POST("/transcriptions", r.params.TranscriptionHandler.Transcribe, r.params.AuthMiddleware.RequireAuth)
}
