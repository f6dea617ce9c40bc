// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"booking/internal/delivery/http/middleware"
	"booking/internal/delivery/http/router/handler"
	"booking/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	AccountHandler      *handler.AccountHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	healthHandler  *handler.HealthHandler
	auth           *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		healthHandler:  params.HealthHandler,
		auth:           params.AuthMiddleware,
		rateLimit:      params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Session middleware is attached per route so unknown paths still answer 404.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	api := e.Group("/api", r.rateLimit.Handle)
	users := api.Group("/v1/users")

	// Public
	users.POST("/signup", r.authHandler.Signup)
	users.POST("/login", r.authHandler.Login)
	users.GET("/logout", r.authHandler.Logout)
	users.POST("/forgotPassword", r.authHandler.ForgotPassword)
	users.PATCH("/resetPassword/:token", r.authHandler.ResetPassword)

	// Lenient: anonymous visitors get a null user
	users.GET("/session", r.accountHandler.Session, r.auth.Identify)

	// Logged in
	users.PATCH("/updateMyPassword", r.authHandler.UpdatePassword, r.auth.Protect)
	users.GET("/me", r.accountHandler.Me, r.auth.Protect)
	users.PATCH("/updateMe", r.accountHandler.UpdateMe, r.auth.Protect)
	users.DELETE("/deleteMe", r.accountHandler.DeleteMe, r.auth.Protect)

	// Administrators
	adminOnly := []echo.MiddlewareFunc{r.auth.Protect, r.auth.RestrictTo(entity.RoleAdministrator)}
	users.GET("", r.accountHandler.CreateAccount, adminOnly...)
	users.POST("", r.accountHandler.CreateAccount, adminOnly...)
}
