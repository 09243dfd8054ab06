package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/senvo/shipping-api/docs"
	"github.com/senvo/shipping-api/internal/api/handler"
	"github.com/senvo/shipping-api/internal/api/middleware"
	"github.com/senvo/shipping-api/internal/core/service"
	"github.com/senvo/shipping-api/internal/infrastructure/db/postgres"
	redisdb "github.com/senvo/shipping-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; create requests are then never replayed from an
// idempotency key.
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("senvo"))

	// --- Dependencies ---
	shipmentRepo := postgres.NewShipmentRepository(db)
	referenceRepo := postgres.NewReferenceRepository(db)
	authRepo := postgres.NewAuthRepository(db)

	var idem service.IdempotencyStore
	if rdb != nil {
		idem = redisdb.NewIdempotencyStore(rdb)
	}

	shipmentService := service.NewShipmentService(shipmentRepo, referenceRepo, idem, log)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)

	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	referenceHandler := handler.NewReferenceHandler(referenceRepo)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Shipment routes (JWT protected) ---
	v1 := e.Group("/v1", authMiddleware)
	v1.POST("/shipments", shipmentHandler.Create)
	v1.GET("/shipments", shipmentHandler.List)
	v1.GET("/carriers", referenceHandler.ListCarriers)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
