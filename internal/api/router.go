package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/api/handler"
	"github.com/recordkeep/records-api/internal/api/middleware"
	"github.com/recordkeep/records-api/internal/core/ports"
	"github.com/recordkeep/records-api/internal/core/service"
	"github.com/recordkeep/records-api/internal/infrastructure/config"
	"github.com/recordkeep/records-api/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Repositories are injected so tests can swap in in-memory implementations;
// db is only used by the readiness probe.
func NewRouter(cfg *config.Config, db *sql.DB, users ports.UserRepository, items ports.ItemRepository, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("records"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret)
	authService := service.NewAuthService(users, codec, time.Duration(cfg.TokenTTLMinutes)*time.Minute, cfg.BcryptCost, log)
	itemService := service.NewItemService(items, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)

	authn := middleware.Auth(authService)
	active := middleware.ActiveOnly()
	superuser := middleware.SuperuserOnly()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authn, active)
	e.PUT("/auth/me", authHandler.UpdateMe, authn, active)

	// --- Admin routes (active check runs before the privilege check) ---
	e.GET("/users", userHandler.List, authn, active, superuser)

	// --- Item routes, scoped to the resolved caller ---
	itemsGroup := e.Group("/items", authn, active)
	itemsGroup.GET("", itemHandler.List)
	itemsGroup.POST("", itemHandler.Create)
	itemsGroup.GET("/:id", itemHandler.Get)
	itemsGroup.PUT("/:id", itemHandler.Update)
	itemsGroup.DELETE("/:id", itemHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/healthz", healthHandler.Liveness)              // liveness  – is the process alive?
	e.GET("/healthz/ready", readinessHandler.Readiness)    // readiness – is the store reachable?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
