package api

import (
	"net/http"

	"trackhq/trackhq-server/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the router. The exercise catalog is
// public; everything else requires a session token.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	recordService service.RecordService,
	exportService service.ExportService,
	analyticsService service.AnalyticsService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	workoutHandler := NewWorkoutHandler(recordService)
	templateHandler := NewTemplateHandler(recordService)
	preferencesHandler := NewPreferencesHandler(recordService)
	exportHandler := NewExportHandler(exportService, recordService)
	statsHandler := NewStatsHandler(analyticsService)
	exerciseHandler := NewExerciseHandler()

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// --- Exercise Catalog (public, static data) ---
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/categories", exerciseHandler.ListCategories)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			profileID, err := getProfileIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get profile ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"profileId": profileID})
		})

		// --- Profile Routes ---
		profileGroup := protected.Group("/profiles")
		{
			profileGroup.GET("", profileHandler.ListProfiles)
			profileGroup.POST("", profileHandler.CreateProfile)
			profileGroup.GET("/active", profileHandler.GetActiveProfile)
			profileGroup.PUT("/active", profileHandler.SetActiveProfile)
			profileGroup.PUT("/:id", profileHandler.UpdateProfile)
			profileGroup.DELETE("/:id", profileHandler.DeleteProfile)
		}

		// --- Workout Routes (scoped to the active profile) ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.PUT("", workoutHandler.SaveWorkout)
			workoutGroup.GET("/date/:date", workoutHandler.GetWorkoutByDate)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		// --- Template Routes ---
		templateGroup := protected.Group("/templates")
		{
			templateGroup.GET("", templateHandler.ListTemplates)
			templateGroup.PUT("", templateHandler.SaveTemplate)
			templateGroup.GET("/:id", templateHandler.GetTemplate)
			templateGroup.DELETE("/:id", templateHandler.DeleteTemplate)
		}

		// --- Preference Routes ---
		protected.GET("/preferences", preferencesHandler.GetPreferences)
		protected.PUT("/preferences", preferencesHandler.SavePreferences)

		// --- Stats ---
		protected.GET("/stats", statsHandler.GetStats)

		// --- Export / Import / Offsite Backup ---
		protected.GET("/export", exportHandler.Export)
		protected.POST("/import", exportHandler.Import)
		protected.DELETE("/data", exportHandler.ClearAll)
		protected.POST("/backups", exportHandler.UploadBackup)
		protected.GET("/backups/:key", exportHandler.DownloadBackup)
		protected.DELETE("/backups/:key", exportHandler.DeleteBackup)
		protected.GET("/backups/:key/download-url", exportHandler.BackupDownloadURL)
	}
}
