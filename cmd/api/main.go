// Package main is the entry point for the tracking service.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/clients/location"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/clients/mytrips"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/config"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/handlers"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/middleware"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/pkg/logger"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/repository"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/routes"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/service"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/simstate"
	redisclient "github.com/AdarBahar/mytrips-viewer-ui/pkg/redis"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title MyTrips Viewer API
// @version 1.0
// @description Backend service for the MyTrips route-tracking demo
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	zlog, err := logger.New(cfg.DebugMode)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer func() {
		_ = zlog.Sync()
	}()

	if cfg.DebugMode {
		zlog.Warn("DEBUG MODE IS ENABLED - Sensitive data will be logged. DO NOT USE IN PRODUCTION!")
	}
	if cfg.MockAuthEnabled {
		zlog.Warn("MOCK AUTHENTICATION IS ENABLED - DO NOT USE IN PRODUCTION!")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry)
	if jwtService == nil {
		zlog.Fatal("JWT_SECRET must be at least 32 bytes")
	}

	httpClient := &http.Client{}

	// Identity provider, selected once per deployment mode.
	var identity service.IdentityProvider
	if cfg.MockAuthEnabled {
		identity = service.NewMockIdentity(cfg.MockUsername, cfg.MockPassword, cfg.MockUserEmail, cfg.MockUserID)
	} else {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
		if err != nil {
			zlog.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.User{}); err != nil {
			zlog.Fatalf("Failed to migrate database: %v", err)
		}

		userRepo := repository.NewUserRepository(db)
		mytripsClient := mytrips.NewClient(httpClient, cfg.MyTripsBaseURL, cfg.LocAPIToken, cfg.DebugMode)
		identity = service.NewStoreIdentity(userRepo, mytripsClient)
	}

	// Simulated positions live in redis when configured, otherwise in
	// process memory.
	var simStore simstate.Store
	if cfg.RedisAddr != "" {
		client, err := redisclient.NewClient(cfg)
		if err != nil {
			zlog.Fatalf("Failed to connect to Redis: %v", err)
		}
		simStore = simstate.NewRedisStore(client)
	} else {
		simStore = simstate.NewMemoryStore()
	}

	// Telemetry provider: live only when the Location API is configured
	// and mock mode is off.
	locClient := location.NewClient(httpClient, cfg.LocAPIBaseURL, cfg.LocAPIToken, cfg.DebugMode)
	var telemetry service.TelemetryProvider
	if cfg.MockAuthEnabled || !locClient.Configured() {
		telemetry = service.NewMockTelemetry(simStore)
	} else {
		telemetry = service.NewLiveTelemetry(locClient, simStore)
	}

	authService := service.NewAuthService(identity, jwtService)

	authHandler := handlers.NewAuthHandler(authService)
	trackingHandler := handlers.NewTrackingHandler(telemetry)
	healthHandler := handlers.NewHealthHandler()
	authMW := middleware.NewAuthMiddleware(authService)

	router := gin.New()
	router.Use(gin.Recovery())
	routes.Setup(router, authHandler, trackingHandler, healthHandler, authMW, cfg, zlog)

	zlog.Infof("Starting tracking service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		zlog.Fatalf("Failed to start server: %v", err)
	}
}
