// Package router contains routing for the HTTP delivery.
package router

import (
	"authsvc/internal/delivery/http/controller"
	"authsvc/internal/delivery/http/middleware"
	"authsvc/internal/delivery/http/protocol"
	"authsvc/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SignInController protocol.Controller[controller.SignInRequest]
	SignUpController protocol.Controller[controller.SignUpRequest]
	AccountHandler   *handler.AccountHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	signIn         protocol.Controller[controller.SignInRequest]
	signUp         protocol.Controller[controller.SignUpRequest]
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		signIn:         params.SignInController,
		signUp:         params.SignUpController,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/signin", AdaptRoute(r.signIn))
	e.POST("/signup", AdaptRoute(r.signUp))

	accountsGroup := e.Group("/accounts")
	accountsGroup.Use(r.authMiddleware.Authenticate)
	{
		accountsGroup.GET("/me", r.accountHandler.GetMe)
	}
}
