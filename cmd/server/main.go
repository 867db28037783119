package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	salesapp "github.com/salestrack/backend/internal/application/sales"
	"github.com/salestrack/backend/internal/infrastructure/cache"
	"github.com/salestrack/backend/internal/infrastructure/config"
	"github.com/salestrack/backend/internal/infrastructure/logger"
	"github.com/salestrack/backend/internal/infrastructure/persistence"
	"github.com/salestrack/backend/internal/interfaces/http/handler"
	"github.com/salestrack/backend/internal/interfaces/http/middleware"
	"github.com/salestrack/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			SalesTrack Backend API
//	@version		1.0
//	@description	Seller and transaction record keeping with aggregated sales analytics

//	@contact.name	API Support
//	@contact.url	https://github.com/salestrack/backend

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting SalesTrack Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	sellerRepo := persistence.NewGormSellerRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)

	// Initialize analytics cache
	analyticsCache := buildAnalyticsCache(cfg, log)

	// Initialize application services
	sellerService := salesapp.NewSellerService(sellerRepo, analyticsCache)
	transactionService := salesapp.NewTransactionService(transactionRepo, sellerRepo, analyticsCache)
	analyticsService := salesapp.NewAnalyticsService(transactionRepo, sellerRepo, analyticsCache, log).
		WithCacheTTL(cfg.Cache.TTL)

	// Initialize handlers
	sellerHandler := handler.NewSellerHandler(sellerService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	salesRoutes := router.NewDomainGroup("sales", "/sales")
	salesRoutes.POST("/sellers", sellerHandler.Create)
	salesRoutes.GET("/sellers", sellerHandler.List)
	salesRoutes.GET("/sellers/:id", sellerHandler.GetByID)
	salesRoutes.PUT("/sellers/:id", sellerHandler.Update)
	salesRoutes.DELETE("/sellers/:id", sellerHandler.Delete)

	salesRoutes.POST("/transactions", transactionHandler.Create)
	salesRoutes.GET("/transactions", transactionHandler.List)
	salesRoutes.GET("/transactions/:id", transactionHandler.GetByID)
	salesRoutes.PUT("/transactions/:id", transactionHandler.Update)
	salesRoutes.DELETE("/transactions/:id", transactionHandler.Delete)

	salesRoutes.GET("/analytics/most-productive-seller", analyticsHandler.MostProductiveSeller)
	salesRoutes.GET("/analytics/sellers-under-threshold", analyticsHandler.SellersUnderThreshold)
	salesRoutes.GET("/analytics/busiest-period/:sellerId", analyticsHandler.BusiestPeriod)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(salesRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// buildAnalyticsCache selects the cache backend from config. A Redis backend
// that cannot be reached degrades to the in-memory cache rather than
// blocking startup.
func buildAnalyticsCache(cfg *config.Config, log *zap.Logger) salesapp.AnalyticsCache {
	if !cfg.Cache.Enabled {
		log.Info("Analytics cache disabled")
		return nil
	}

	if cfg.Cache.Backend == "redis" {
		redisCache, err := cache.NewRedisAnalyticsCache(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("Redis cache unavailable, falling back to in-memory cache", zap.Error(err))
			return cache.NewMemoryAnalyticsCache()
		}
		log.Info("Analytics cache enabled", zap.String("backend", "redis"), zap.String("addr", cfg.Redis.Addr()))
		return redisCache
	}

	log.Info("Analytics cache enabled", zap.String("backend", "memory"))
	return cache.NewMemoryAnalyticsCache()
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
