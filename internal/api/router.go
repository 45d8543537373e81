package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/pulsegym/gym-system/docs"
	"github.com/pulsegym/gym-system/internal/api/handler"
	"github.com/pulsegym/gym-system/internal/api/middleware"
	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

// Deps are the services and probes the router exposes.
type Deps struct {
	Auth        ports.AuthService
	Dispatcher  ports.RoleDispatcher
	Admin       ports.AdminService
	Classes     ports.ClassService
	Memberships ports.MembershipService
	Health      []handler.HealthCheck
	Log         zerolog.Logger

	// Registerer and Gatherer default to the prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "gym",
		Subsystem:  "http",
		Registerer: d.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Dispatcher)
	adminHandler := handler.NewAdminHandler(d.Admin)
	classHandler := handler.NewClassHandler(d.Classes)
	membershipHandler := handler.NewMembershipHandler(d.Memberships)

	authMiddleware := middleware.Auth(d.Auth)
	require := func(caps ...domain.Capability) echo.MiddlewareFunc {
		return middleware.RequireCapability(d.Dispatcher, caps...)
	}

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/me/capabilities", authHandler.Capabilities, authMiddleware)

	// --- Admin routes ---
	admin := e.Group("/admin", authMiddleware)
	trainers := admin.Group("/trainers", require(domain.CapManageTrainers))
	trainers.GET("", adminHandler.ListTrainers)
	trainers.POST("", adminHandler.AddTrainer)
	trainers.PATCH("/:id", adminHandler.UpdateTrainer)
	trainers.POST("/:id/deletion", adminHandler.RequestTrainerDeletion)
	trainers.DELETE("/:id", adminHandler.DeleteTrainer)
	admin.DELETE("/classes/:id", adminHandler.DeleteClass, require(domain.CapDeleteAnyClass))
	admin.GET("/revenue", adminHandler.Revenue, require(domain.CapViewRevenue))

	// --- Trainer routes ---
	own := e.Group("/trainer/classes", authMiddleware, require(domain.CapManageOwnClasses))
	own.GET("", classHandler.ListOwn)
	own.POST("", classHandler.Create)
	own.PATCH("/:id", classHandler.Update)
	own.DELETE("/:id", classHandler.Delete)

	e.GET("/classes", classHandler.Upcoming, authMiddleware, require(domain.CapBrowseClasses))

	// --- Member routes ---
	memberships := e.Group("/member/memberships", authMiddleware, require(domain.CapManageOwnMemberships))
	memberships.GET("", membershipHandler.ListOwn)
	memberships.POST("", membershipHandler.Purchase)
	memberships.DELETE("/:id", membershipHandler.Cancel)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Health...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
