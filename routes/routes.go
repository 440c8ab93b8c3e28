package routes

import (
	"RaacProms/cache"
	"RaacProms/config"
	"RaacProms/controllers"
	"RaacProms/handlers"
	"RaacProms/middlewares"
	"RaacProms/repositories"
	"RaacProms/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.example.com", "https://example-dev.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	patientRepo := repositories.NewPatientRepository(cache)
	measureRepo := repositories.NewMeasureRepository(cache)
	settingsRepo := repositories.NewSettingsRepository(cache)
	backupRepo := repositories.NewBackupRepository(cache)

	snapshotService := services.NewSnapshotService(backupRepo, cache)

	patientService := services.NewPatientService(patientRepo, snapshotService)
	measureService := services.NewMeasureService(measureRepo, patientRepo, snapshotService)
	settingsService := services.NewSettingsService(settingsRepo, snapshotService)
	reminderService := services.NewReminderService(patientRepo, measureRepo, settingsRepo, config)
	portalService := services.NewPortalService(patientRepo, measureRepo)
	statsService := services.NewStatsService(patientRepo, measureRepo)
	backupService := services.NewBackupService(backupRepo, snapshotService)

	patientHandler := handlers.NewPatientHandler(patientService)
	measureHandler := handlers.NewMeasureHandler(measureService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	exportHandler := handlers.NewExportHandler(patientService, measureService, backupService)
	statsHandler := handlers.NewStatsHandler(statsService)
	portalHandler := handlers.NewPortalHandler(portalService)

	// Public routes: root and the token-gated patient portal
	controllers.SetupRootRoute(router)
	controllers.SetupPortalRoutes(router, portalHandler)

	// Administrative routes require the bearer token
	admin := router.Group("/")
	admin.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	controllers.SetupPromsRoutes(
		admin,
		patientHandler,
		measureHandler,
		reminderHandler,
		settingsHandler,
		exportHandler,
		statsHandler,
	)

	return router
}
