// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"finboard/internal/delivery/http/middleware"
	"finboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ConnectionHandler  *handler.ConnectionHandler
	TransactionHandler *handler.TransactionHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	connectionHandler  *handler.ConnectionHandler
	transactionHandler *handler.TransactionHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		connectionHandler:  params.ConnectionHandler,
		transactionHandler: params.TransactionHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// The provider redirects the user's browser here; no auth possible.
	e.GET("/oauth/sumup/callback", r.connectionHandler.Callback)

	// API routes called by the frontend
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.POST("/sumup/connect", r.connectionHandler.Connect)
		apiGroup.POST("/sumup/sync", r.transactionHandler.Sync)
		apiGroup.GET("/sumup/status", r.connectionHandler.Status)
		apiGroup.DELETE("/sumup/connection", r.connectionHandler.Disconnect)
		apiGroup.GET("/transactions", r.transactionHandler.List)
	}
}
