// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/register", r.accountHandler.Register)
		api.POST("/login", r.accountHandler.Login)

		api.GET("/users", r.accountHandler.ListAccounts)
		// The /me route must be registered before /:id so echo does not
		// capture "me" as an id parameter.
		api.GET("/users/me", r.accountHandler.GetSelf, r.authMiddleware.Authenticate)
		api.PUT("/users/:id", r.accountHandler.UpdateAccount)
		api.DELETE("/users/:id", r.accountHandler.DeleteAccount)
	}
}
