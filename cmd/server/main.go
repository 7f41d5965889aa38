package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trackhq/trackhq-server/internal/api"
	"trackhq/trackhq-server/internal/config"
	"trackhq/trackhq-server/internal/kv"
	"trackhq/trackhq-server/internal/logging"
	"trackhq/trackhq-server/internal/repository/kvrepo"
	"trackhq/trackhq-server/internal/service"
	"trackhq/trackhq-server/internal/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// @title TrackHQ API
// @version 1.0
// @description API for tracking workouts, templates and training statistics across local profiles.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logging.Setup(logging.SetupParams{
		LogFileName:   cfg.Logging.File,
		LogToStdout:   cfg.Logging.Stdout,
		LogLevel:      cfg.Logging.Level,
		LogFormatJSON: cfg.Logging.JSON,
	})
	log.Infoln("starting trackhq server ...")

	// --- Key-Value Store ---
	var store kv.Store
	switch cfg.Storage.Backend {
	case "memory":
		store = kv.NewMemoryStore()
	case "mongo":
		dbClient, err := kv.ConnectMongo(cfg.Database.URI)
		if err != nil {
			log.Fatalf("could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Infoln("disconnecting MongoDB ...")
			if err := kv.DisconnectMongo(dbClient); err != nil {
				log.Errorf("failed to disconnect MongoDB: %v", err)
			}
		}()
		store = kv.NewMongoStore(dbClient.Database(cfg.Database.Name))
	case "file":
		store, err = kv.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			log.Fatalf("could not open file store at %s: %v", cfg.Storage.Dir, err)
		}
	default:
		log.Fatalf("unknown storage backend: %q", cfg.Storage.Backend)
	}
	log.Infof("storage backend: %s", cfg.Storage.Backend)

	// --- Offsite Backup Storage (optional) ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %v", err)
		}
		log.Infof("offsite backups enabled, bucket: %s", cfg.S3.BucketName)
	}

	// --- Repositories ---
	profileRepo := kvrepo.NewProfileRepository(store)
	recordRepo := kvrepo.NewRecordRepository(store, profileRepo)
	credentialRepo := kvrepo.NewCredentialRepository(store)

	// --- Services ---
	authService := service.NewAuthService(profileRepo, credentialRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(profileRepo, credentialRepo)
	recordService := service.NewRecordService(recordRepo)
	exportService := service.NewExportService(recordRepo, profileRepo, fileStorage)
	analyticsService := service.NewAnalyticsService(recordRepo)

	// --- Router ---
	router := gin.Default()
	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		authService,
		profileService,
		recordService,
		exportService,
		analyticsService,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infoln("shutting down server ...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Infoln("server exiting")
}
