package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/hospsys/patient-registry/internal/config"
	"github.com/hospsys/patient-registry/internal/handlers"
	"github.com/hospsys/patient-registry/internal/logging"
	"github.com/hospsys/patient-registry/internal/middleware"
	"github.com/hospsys/patient-registry/internal/observability"
	"github.com/hospsys/patient-registry/internal/services"
	"github.com/hospsys/patient-registry/internal/store"

	_ "github.com/hospsys/patient-registry/docs"
)

// @title           Patient Registry API
// @version         1.0
// @description     API for patient identity validation and deduplication. Validates Brazilian identity documents (CPF, CNS), searches for possible duplicate records during registration and gates submission on duplicate resolution.

// @host      localhost:8080
// @BasePath  /

// @tag.name patients
// @tag.description Patient registration and validation operations

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	config.InitMongoDB()
	config.InitRedis()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire the registration core
	collection := config.MongoDB.Collection(config.AppConfig.PatientCollection)
	patientStore := store.NewMongoPatientStore(collection, config.AppConfig.StoreTimeout, config.AppConfig.DedupMaxResults, logging.Logger)
	candidateCache := store.NewCandidateCache(config.Redis, config.AppConfig.CandidateCacheTTL, logging.Logger)
	searchLimiter := services.NewRateLimiter(config.AppConfig.DedupRateLimit, time.Minute/time.Duration(config.AppConfig.DedupRateLimit), logging.Logger)
	searcher := services.NewDuplicateSearcher(patientStore, candidateCache, logging.Logger).
		WithRateLimiter(searchLimiter)

	patientHandler := handlers.NewPatientHandler(
		patientStore,
		searcher,
		config.Redis,
		config.AppConfig.RedisTTL,
		config.AppConfig.StoreTimeout,
		logging.Logger,
	)
	healthHandler := handlers.NewHealthHandler(config.MongoDB, config.Redis)

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.POST("/patients", patientHandler.RegisterPatient)
		v1.PUT("/patients/:id", patientHandler.UpdatePatient)
		v1.GET("/patients/:id", patientHandler.GetPatient)
		v1.POST("/patients/check-duplicates", patientHandler.CheckDuplicates)
		v1.POST("/patients/validate", patientHandler.ValidatePatient)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
