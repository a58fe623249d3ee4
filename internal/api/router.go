// Package api assembles the Echo application: guards, destinations, error
// mapping and the operational endpoints.
package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/storeratings/storefront/internal/api/handler"
	"github.com/storeratings/storefront/internal/api/middleware"
	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/core/ports"
	"github.com/storeratings/storefront/internal/core/service"
	"github.com/storeratings/storefront/internal/session"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(backend ports.Backend, sessions *session.Store, backendURL string, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, sessions)

	// --- Dependencies ---
	dashboards := service.NewDashboardService(backend)
	owners := service.NewOwnerService(backend)
	admins := service.NewAdminService(backend)

	authHandler := handler.NewAuthHandler(backend, sessions, log)
	dashboardHandler := handler.NewDashboardHandler(dashboards)
	ownerHandler := handler.NewOwnerHandler(owners)
	adminHandler := handler.NewAdminHandler(admins)
	passwordHandler := handler.NewPasswordHandler(backend, sessions, log)

	// --- Entry point ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, middleware.LoginPath)
	})

	// --- Anonymous-only destinations ---
	anon := e.Group("", middleware.AnonymousOnly(sessions))
	anon.GET(middleware.LoginPath, authHandler.LoginPage)
	anon.POST(middleware.LoginPath, authHandler.Login)
	anon.GET("/register", authHandler.RegisterPage)
	anon.POST("/register", authHandler.Register)

	// --- Authenticated frame ---
	authed := e.Group("", middleware.RequireSession(sessions))
	authed.POST("/logout", authHandler.Logout)

	authed.GET("/dashboard", dashboardHandler.Overview,
		middleware.RequireRoles(sessions, domain.RoleUser))
	authed.POST("/dashboard/ratings", dashboardHandler.SubmitRating,
		middleware.RequireRoles(sessions, domain.RoleUser))

	authed.GET("/store-owner-dashboard", ownerHandler.Overview,
		middleware.RequireRoles(sessions, domain.RoleStoreOwner))

	authed.GET("/admin", adminHandler.Overview,
		middleware.RequireRoles(sessions, domain.RoleAdmin))
	authed.POST("/admin/users", adminHandler.CreateUser,
		middleware.RequireRoles(sessions, domain.RoleAdmin))
	authed.POST("/admin/stores", adminHandler.CreateStore,
		middleware.RequireRoles(sessions, domain.RoleAdmin))

	authed.GET("/update-password", passwordHandler.Page,
		middleware.RequireRoles(sessions, domain.RoleUser, domain.RoleStoreOwner))
	authed.POST("/update-password", passwordHandler.Update,
		middleware.RequireRoles(sessions, domain.RoleUser, domain.RoleStoreOwner))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(backendURL, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
