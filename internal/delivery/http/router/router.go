// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"guideflow/internal/delivery/http/middleware"
	"guideflow/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	GuideHandler    *handler.GuideHandler
	FeedbackHandler *handler.FeedbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	guideHandler    *handler.GuideHandler
	feedbackHandler *handler.FeedbackHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		guideHandler:    params.GuideHandler,
		feedbackHandler: params.FeedbackHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Guide routes, all owner-scoped behind authentication
	guideGroup := e.Group("/guides")
	guideGroup.Use(r.authMiddleware.Authenticate)
	{
		guideGroup.GET("", r.guideHandler.List)
		guideGroup.POST("", r.guideHandler.Create)
		guideGroup.GET("/:id", r.guideHandler.Get)
		guideGroup.PUT("/:id", r.guideHandler.Update)
		guideGroup.DELETE("/:id", r.guideHandler.Delete)
		guideGroup.POST("/:id/summarize", r.guideHandler.Summarize)
	}

	// Feedback routes: any authenticated user, any guide
	feedbackGroup := e.Group("/feedback")
	feedbackGroup.Use(r.authMiddleware.Authenticate)
	{
		feedbackGroup.POST("", r.feedbackHandler.Create)
		feedbackGroup.GET("/:guideId", r.feedbackHandler.ListByGuide)
	}
}
