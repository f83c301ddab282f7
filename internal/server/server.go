package server

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/adityaraj/fuelflow/config"
	"github.com/adityaraj/fuelflow/internal/handlers"
	"github.com/adityaraj/fuelflow/internal/middleware"
	"github.com/adityaraj/fuelflow/internal/payment"
	"github.com/adityaraj/fuelflow/internal/store"
	"github.com/adityaraj/fuelflow/internal/tokens"
	"github.com/adityaraj/fuelflow/internal/worker"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	st := store.NewGormStore(db)
	gateway := payment.NewSimulatedGateway()
	generator := tokens.NewGenerator()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Default())

	setupRoutes(r, st, gateway, generator, logger)

	if os.Getenv("EXPIRY_SWEEP") == "1" {
		interval := 1 * time.Minute
		if raw := os.Getenv("EXPIRY_SWEEP_INTERVAL"); raw != "" {
			if parsed, err := time.ParseDuration(raw); err == nil {
				interval = parsed
			}
		}
		sweeper := worker.NewExpirySweeper(st, logger, interval)
		go sweeper.Run(context.Background())
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func newLogger() (*zap.Logger, error) {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = lvl
	return zapcfg.Build()
}

func setupRoutes(r *gin.Engine, st store.Store, gateway payment.Gateway, generator *tokens.Generator, logger *zap.Logger) {
	r.Use(middleware.StoreMiddleware(st))
	r.Use(middleware.GeneratorMiddleware(generator))
	r.Use(middleware.PaymentMiddleware(gateway))
	r.Use(middleware.LoggerMiddleware(logger))

	v1 := r.Group("/v1")
	{
		v1.GET("/fuel-types", handlers.ListFuelTypes)
		v1.POST("/purchases", handlers.CreatePurchase)

		tokenRoutes := v1.Group("/tokens")
		{
			tokenRoutes.GET("/:code", handlers.GetToken)
			tokenRoutes.GET("/:code/qr", handlers.GetTokenQR)
		}
	}
}
