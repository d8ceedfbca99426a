package routes

import (
	"fmt"

	"watchbill-admin/internal/admin"
	"watchbill-admin/internal/api/handlers"
	"watchbill-admin/internal/api/middleware"
	"watchbill-admin/internal/auth"
	"watchbill-admin/internal/config"
	"watchbill-admin/internal/logger"
	"watchbill-admin/internal/repository"
	"watchbill-admin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. Outside
// development the server refuses to start without working authentication.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	sailorRepo := repository.NewSailorRepository(db)
	qualRepo := repository.NewQualRepository(db)
	eventRepo := repository.NewEventRepository(db)
	transactor := repository.NewGormTransactor(db)

	sailorAdmin, err := admin.NewSailorAdmin(cfg.RecentWatchDays, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register sailor admin: %w", err)
	}

	// Initialize services
	sailorService := service.NewSailorService(sailorRepo, qualRepo, eventRepo, transactor, sailorAdmin, validator)
	qualService := service.NewQualService(qualRepo)

	// Initialize auth configuration and services
	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	authService, err := newAuthService(cfg)
	if err != nil {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("authentication unavailable: %w", err)
		}
		logger.New().WithField("error", err.Error()).Warn("Authentication disabled in development")
	} else {
		authHandler = auth.NewAuthHandler(authService)
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	sailorHandler := handlers.NewSailorHandler(sailorService)
	qualHandler := handlers.NewQualHandler(qualService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/validate", authHandler.ValidateToken)
		}
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		adminGroup := v1.Group("/admin")

		sailors := adminGroup.Group("/sailors")
		{
			sailors.GET("", sailorHandler.ListSailors)
			sailors.POST("", sailorHandler.CreateSailor)
			sailors.GET("/layout", sailorHandler.GetLayout)
			sailors.POST("/actions/:action", sailorHandler.RunAction)
			sailors.GET("/:id", sailorHandler.GetSailor)
			sailors.PUT("/:id", sailorHandler.UpdateSailor)
			sailors.POST("/:id/events", sailorHandler.AddEvent)
			sailors.POST("/:id/events/series", sailorHandler.ScheduleSeries)
			sailors.PUT("/:id/events/:eventId", sailorHandler.UpdateEvent)
			sailors.DELETE("/:id/events/:eventId", sailorHandler.DeleteEvent)
		}

		adminGroup.GET("/quals", qualHandler.ListQuals)
	}

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

// newAuthService reads auth.yaml from the working directory or ./config,
// falling back to the application settings
func newAuthService(cfg *config.Config) (*auth.AuthService, error) {
	authConfig, err := auth.LoadAuthConfig("", cfg)
	if err != nil {
		return nil, err
	}
	return auth.NewAuthService(authConfig)
}
