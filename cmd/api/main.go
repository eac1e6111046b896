package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"quantboard/internal/config"
	"quantboard/internal/database"
	"quantboard/internal/handlers"
	"quantboard/internal/logger"
	"quantboard/internal/middleware"
	"quantboard/internal/provider"
	"quantboard/internal/services"
	"quantboard/internal/validator"

	_ "quantboard/internal/docs" // Import swagger docs
)

// @title           Quant Board Core API
// @version         1.0
// @description     API for collecting and managing stock market data: company metadata, daily price history, and financial statements.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Pipeline API key for ingestion endpoints.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Market data provider
	httpClient := &http.Client{Timeout: appConfig.FetchTimeout}
	marketData := provider.NewYahooProvider(httpClient, appConfig.ProviderBaseURL)

	// Initialize services
	db := dbManager.DB()
	stockService := services.NewStockService(db)
	ingestService := services.NewIngestService(db, marketData, stockService, appConfig.FetchTimeout)

	// Initialize handlers
	stockHandler := handlers.NewStockHandler(stockService)
	ingestHandler := handlers.NewIngestHandler(ingestService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Stock catalog routes
	stocks := v1.Group("/stocks")
	stocks.GET("", stockHandler.ListStocks)
	stocks.POST("", stockHandler.CreateStock)
	stocks.GET("/:code", stockHandler.GetStock)
	stocks.GET("/:code/prices", stockHandler.GetDailyPrices)
	stocks.GET("/:code/financials", stockHandler.GetFinancialStatements)
	stocks.POST("/:code/financials", stockHandler.CreateFinancialStatement)

	// Ingestion routes (pipeline only)
	ingest := v1.Group("/ingest")
	ingest.Use(middleware.PipelineAuth(appConfig.PipelineAPIKey))
	ingest.POST("/bulk", ingestHandler.IngestBulk)
	ingest.GET("/runs", ingestHandler.ListRuns)
	ingest.POST("/:symbol", ingestHandler.IngestSymbol)

	log.Infof("Starting Quant Board backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
