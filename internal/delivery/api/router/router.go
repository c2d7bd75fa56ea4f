// Package router contains routing setup for the API delivery.
package router

import (
	"tapgate/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// RouterParams holds the handlers, injected by Fx.
type RouterParams struct {
	fx.In

	TapHandler *handler.TapHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	tapHandler *handler.TapHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tapHandler: params.TapHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Tap processing and ledger read routes
	tapsGroup := apiV1.Group("/taps")
	{
		tapsGroup.POST("", r.tapHandler.ProcessTap)
		tapsGroup.GET("/:class/:id/last", r.tapHandler.LastTap)
		tapsGroup.GET("/:class/:id/today", r.tapHandler.LastTapToday)
	}
}
