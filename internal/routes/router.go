package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack/internal/config"
	"logitrack/internal/delivery/http/handler"
	"logitrack/internal/infrastructure/database/postgres"
	"logitrack/internal/logger"
	"logitrack/internal/middleware"
	"logitrack/internal/usecase/admin"
	"logitrack/internal/usecase/auth"
	"logitrack/internal/usecase/gestionnaire"
	"logitrack/internal/usecase/livreur"
)

// Services groups the wired use cases so main can reach the background
// jobs after the router is set up.
type Services struct {
	Auth *auth.Service
}

func SetupRoutes(cfg *config.Config, db *postgres.DB) (*gin.Engine, *Services) {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepo := postgres.NewUserRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	entrepotRepo := postgres.NewEntrepotRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	vehiculeRepo := postgres.NewVehiculeRepository(db)
	colisRepo := postgres.NewColisRepository(db)
	livraisonRepo := postgres.NewLivraisonRepository(db)

	authService := auth.NewService(userRepo, refreshTokenRepo, cfg)
	adminService := admin.NewService(userRepo, entrepotRepo, clientRepo, vehiculeRepo, colisRepo, livraisonRepo)
	gestionnaireService := gestionnaire.NewService(userRepo, entrepotRepo, clientRepo, colisRepo, livraisonRepo, vehiculeRepo)
	livreurService := livreur.NewService(userRepo, livraisonRepo, vehiculeRepo)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	gestionnaireHandler := handler.NewGestionnaireHandler(gestionnaireService)
	livreurHandler := handler.NewLivreurHandler(livreurService)

	api := router.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			authHandler.RegisterProtectedRoutes(protected)

			adminGroup := protected.Group("")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
			}

			gestionnaireGroup := protected.Group("")
			gestionnaireGroup.Use(middleware.GestionnaireAccess())
			{
				gestionnaireHandler.RegisterRoutes(gestionnaireGroup)
			}

			livreurGroup := protected.Group("")
			livreurGroup.Use(middleware.LivreurOnly())
			{
				livreurHandler.RegisterRoutes(livreurGroup)
			}
		}
	}

	logger.Info("All routes initialized")
	return router, &Services{Auth: authService}
}
