package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spendtrack/internal/config"
	"spendtrack/internal/database"
	"spendtrack/internal/handlers"
	"spendtrack/internal/logger"
	"spendtrack/internal/middleware"
	"spendtrack/internal/services"
	"spendtrack/internal/store"
	"spendtrack/internal/validator"

	_ "spendtrack/internal/docs" // Import swagger docs
)

// @title           SpendTrack API
// @version         1.0
// @description     SpendTrack is a personal expense-tracking service: record transactions, view a filtered and sorted history with category summaries, and delete entries. Amounts are integer minor currency units (cents).

// @host      localhost:8080
// @BasePath  /api/v1

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

	// Create the schema
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize the ledger store and services
	db := dbManager.DB()
	ledger := store.NewLedger(db, appConfig.DedupWindow)
	expenseService := services.NewExpenseService(ledger)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

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

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/summary", expenseHandler.GetCategorySummary)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	log.Infof("Starting SpendTrack server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
