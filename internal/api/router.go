package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propertymanager/landlord-api/internal/api/handler"
	"github.com/propertymanager/landlord-api/internal/api/middleware"
	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Services are built in
// main so the router stays free of storage concerns.
type Dependencies struct {
	JWTSecret string
	Logger    zerolog.Logger

	Auth       ports.AuthService
	Moderation ports.ModerationService
	Appeals    ports.AppealService
	Properties ports.PropertyService
	Tenancies  ports.TenancyService
	Reminders  ports.ReminderService

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("landlord"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	accountHandler := handler.NewAccountHandler(deps.Moderation)
	appealHandler := handler.NewAppealHandler(deps.Appeals)
	propertyHandler := handler.NewPropertyHandler(deps.Properties)
	tenancyHandler := handler.NewTenancyHandler(deps.Tenancies)
	notificationHandler := handler.NewNotificationHandler(deps.Reminders)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/admin/login", authHandler.AdminLogin)
	e.POST("/appeals", appealHandler.Submit)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	auth := middleware.Auth(deps.JWTSecret)

	v1 := e.Group("/v1", auth, middleware.RBAC(domain.RoleLandlord))
	v1.POST("/properties", propertyHandler.Create)
	v1.GET("/properties", propertyHandler.List)
	v1.GET("/properties/:id", propertyHandler.Get)
	v1.POST("/properties/:id/renovations", propertyHandler.AddRenovation)
	v1.DELETE("/properties/:id", propertyHandler.Delete)

	v1.POST("/tenancies", tenancyHandler.Create)
	v1.GET("/tenancies", tenancyHandler.List)
	v1.GET("/tenancies/calendar", tenancyHandler.Calendar)
	v1.POST("/tenancies/:id/payments", tenancyHandler.RecordPayment)
	v1.GET("/dashboard", tenancyHandler.Dashboard)

	v1.POST("/notifications", notificationHandler.Send)
	v1.POST("/notifications/expiring", notificationHandler.QueueExpiring)

	admin := e.Group("/v1/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/accounts", accountHandler.List)
	admin.PUT("/accounts/:id", accountHandler.Moderate)
	admin.DELETE("/accounts/:id", accountHandler.Delete)

	return e
}
