// Package routes defines HTTP routes for the tracking service.
package routes

import (
	"github.com/AdarBahar/mytrips-viewer-ui/docs"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/config"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/handlers"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	trackingHandler *handlers.TrackingHandler,
	healthHandler *handlers.HealthHandler,
	authMW *middleware.AuthMiddleware,
	cfg *config.Config,
	log *zap.SugaredLogger,
) {
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics())
	router.Use(cors.New(corsConfig(cfg, log)))

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/app-login", authHandler.AppLogin)
			auth.GET("/me", authMW.RequireAuth(), authHandler.Me)
		}

		// Static routes are public reference data.
		api.GET("/routes", trackingHandler.Routes)

		protected := api.Group("", authMW.RequireAuth())
		{
			protected.GET("/users", trackingHandler.Users)
			protected.GET("/location/:userID", trackingHandler.Location)
			protected.GET("/history/:userID", trackingHandler.History)
		}
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func corsConfig(cfg *config.Config, log *zap.SugaredLogger) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	switch {
	case len(cfg.CORSOrigins) == 0:
		log.Warn("CORS_ORIGINS not set - using development defaults. Set CORS_ORIGINS in production!")
		corsCfg.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	case len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*":
		log.Error("CORS_ORIGINS='*' is insecure! Specify allowed origins explicitly.")
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	default:
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}

	log.Infof("CORS allowed origins: %v", corsCfg.AllowOrigins)
	return corsCfg
}
