package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/stockroom/backend/internal/application/catalog"
	movementapp "github.com/stockroom/backend/internal/application/movement"
	partnerapp "github.com/stockroom/backend/internal/application/partner"
	"github.com/stockroom/backend/internal/infrastructure/cache"
	"github.com/stockroom/backend/internal/infrastructure/config"
	"github.com/stockroom/backend/internal/infrastructure/countries"
	"github.com/stockroom/backend/internal/infrastructure/logger"
	"github.com/stockroom/backend/internal/infrastructure/persistence"
	"github.com/stockroom/backend/internal/interfaces/http/handler"
	"github.com/stockroom/backend/internal/interfaces/http/middleware"
	"github.com/stockroom/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormProductCategoryRepository(db.DB)
	locationRepo := persistence.NewGormLocationRepository(db.DB)
	supplierProductRepo := persistence.NewGormSupplierProductRepository(db.DB)
	priceHistoryRepo := persistence.NewGormProductPriceHistoryRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	supplierCategoryRepo := persistence.NewGormSupplierCategoryRepository(db.DB)
	countryRepo := persistence.NewGormCountryRepository(db.DB)
	movementRepo := persistence.NewGormMovementRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Country directory provider and cache
	countryProvider := countries.NewClient(cfg.Countries, log)
	var countryCache partnerapp.CountryCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCountryCache(cfg.Redis, cfg.Countries.CacheTTL, log)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer func() {
			if err := redisCache.Close(); err != nil {
				log.Error("Error closing redis", zap.Error(err))
			}
		}()
		countryCache = redisCache
		log.Info("Redis country cache enabled", zap.String("addr", cfg.Redis.Addr()))
	} else {
		countryCache = cache.NewInMemoryCountryCache(cfg.Countries.CacheTTL)
	}

	// Application services
	productService := catalogapp.NewProductService(productRepo, supplierProductRepo, locationRepo, priceHistoryRepo, movementRepo, txScope, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo, log)
	locationService := catalogapp.NewLocationService(locationRepo, productRepo, log)
	supplierProductService := catalogapp.NewSupplierProductService(supplierProductRepo, supplierRepo, categoryRepo, productRepo, log)
	supplierService := partnerapp.NewSupplierService(supplierRepo, supplierCategoryRepo, countryRepo, supplierProductRepo, log)
	supplierCategoryService := partnerapp.NewSupplierCategoryService(supplierCategoryRepo, supplierRepo, log)
	countryService := partnerapp.NewCountryService(countryRepo, countryProvider, countryCache, log)
	movementService := movementapp.NewService(txScope, movementRepo, log)
	simulator := movementapp.NewSimulator(productRepo, movementRepo, nil, log)

	// HTTP handlers
	handlers := router.Handlers{
		Products:           handler.NewProductHandler(productService),
		Categories:         handler.NewCategoryHandler(categoryService),
		Locations:          handler.NewLocationHandler(locationService),
		SupplierProducts:   handler.NewSupplierProductHandler(supplierProductService),
		Suppliers:          handler.NewSupplierHandler(supplierService),
		SupplierCategories: handler.NewSupplierCategoryHandler(supplierCategoryService),
		Countries:          handler.NewCountryHandler(countryService),
		Movements:          handler.NewMovementHandler(movementService, simulator),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order matters: request id first so every later stage and
	// log line carries it, recovery before logging so panics are recorded.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	// Health endpoints live outside the versioned API group
	engine.GET("/health", healthHandler(db))
	engine.GET("/ready", healthHandler(db))

	router.NewRouter(engine).Register(handlers).Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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

// healthHandler reports process liveness and database reachability.
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "error",
				"time":     time.Now().Format(time.RFC3339),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "ok",
			"time":     time.Now().Format(time.RFC3339),
		})
	}
}
