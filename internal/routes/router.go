package routes

import (
	"net/http"

	"moveboss/internal/config"
	"moveboss/internal/database"
	"moveboss/internal/delivery/http/handler"
	"moveboss/internal/events"
	"moveboss/internal/infrastructure/database/postgres"
	"moveboss/internal/logger"
	"moveboss/internal/middleware"
	"moveboss/internal/usecase/delivery"
	"moveboss/internal/usecase/driverpay"
	"moveboss/internal/usecase/settlement"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *database.Database, publisher *events.Publisher) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware order: recovery, request ID, logging, security headers, CORS, request size limit, rate limit
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

	tripRepository := postgres.NewTripRepository(db.DB)
	loadRepository := postgres.NewLoadRepository(db.DB)
	settlementRepository := postgres.NewSettlementRepository(db.DB)
	payPlanRepository := postgres.NewPayPlanRepository(db.DB)
	unitOfWork := postgres.NewUnitOfWork(db.DB)

	settlementService := settlement.NewService(tripRepository, settlementRepository, unitOfWork, publisher)
	settlementHandler := handler.NewSettlementHandler(settlementService)

	deliveryService := delivery.NewService(loadRepository)
	loadHandler := handler.NewLoadHandler(deliveryService)

	driverPayService := driverpay.NewService(payPlanRepository)
	driverHandler := handler.NewDriverHandler(driverPayService)

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
		{
			// Routes shared by owners and drivers
			shared := protected.Group("")
			shared.Use(middleware.OwnerOrDriver())
			{
				loadHandler.RegisterRoutes(shared)
			}

			// Owner routes
			owner := protected.Group("")
			owner.Use(middleware.OwnerOnly())
			{
				settlementHandler.RegisterRoutes(owner)
				settlementHandler.RegisterOwnerRoutes(owner)
				driverHandler.RegisterOwnerRoutes(owner)
			}

			// Driver routes
			driver := protected.Group("")
			driver.Use(middleware.DriverOnly())
			{
				loadHandler.RegisterDriverRoutes(driver)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
