package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"casahub/internal/config"
	"casahub/internal/database"
	"casahub/internal/domain/analytics"
	"casahub/internal/domain/auth"
	"casahub/internal/domain/campaign"
	"casahub/internal/domain/lead"
	"casahub/internal/domain/linkedin"
	"casahub/internal/domain/notification"
	"casahub/internal/domain/property"
	"casahub/internal/domain/todo"
	"casahub/internal/middleware"
	jwtsvc "casahub/internal/pkg/jwt"
	"casahub/internal/pkg/logger"
	"casahub/internal/pkg/scoring"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl := logger.New(cfg.LogLevel, cfg.Env)
	defer zl.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("database connect failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zl.Fatal("migrate failed", zap.Error(err))
	}

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := auth.NewRepository(db)
	propertyRepo := property.NewRepository(db)
	campaignRepo := campaign.NewRepository(db)
	leadRepo := lead.NewRepository(db)
	postRepo := linkedin.NewRepository(db)
	todoRepo := todo.NewRepository(db)
	notificationRepo := notification.NewRepository(db)

	hub := notification.NewHub()

	authService := auth.NewService(userRepo, jwtService, zl)
	propertyService := property.NewService(propertyRepo, zl)
	campaignService := campaign.NewService(campaignRepo, propertyService, zl)
	leadService := lead.NewService(leadRepo, authService, propertyService, scoring.StandardDefaults(), zl)
	notificationService := notification.NewService(notificationRepo, hub, zl)
	postNotifier := linkedin.NewNotifier(notificationService, authService)
	postService := linkedin.NewService(postRepo, postNotifier, campaignService, zl)
	todoService := todo.NewService(todoRepo, authService, zl)
	analyticsService := analytics.NewService(todoRepo, campaignRepo, leadRepo, postRepo, propertyRepo, zl)

	authHandler := auth.NewHandler(authService)
	propertyHandler := property.NewHandler(propertyService)
	campaignHandler := campaign.NewHandler(campaignService)
	leadHandler := lead.NewHandler(leadService)
	postHandler := linkedin.NewHandler(postService)
	todoHandler := todo.NewHandler(todoService)
	notificationHandler := notification.NewHandler(notificationService, hub, jwtService, zl)
	analyticsHandler := analytics.NewHandler(analyticsService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(zl))
	r.Use(middleware.RequestLogger(zl))
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		auth.RegisterPublicRoutes(v1, authHandler)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(jwtService))
		{
			auth.RegisterProtectedRoutes(protected, authHandler)
			property.RegisterRoutes(protected, propertyHandler)
			campaign.RegisterRoutes(protected, campaignHandler)
			lead.RegisterRoutes(protected, leadHandler)
			linkedin.RegisterRoutes(protected, postHandler)
			todo.RegisterRoutes(protected, todoHandler)
			notification.RegisterRoutes(protected, notificationHandler)
			analytics.RegisterRoutes(protected, analyticsHandler)
		}
	}

	notification.RegisterWS(r, notificationHandler)

	zl.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
