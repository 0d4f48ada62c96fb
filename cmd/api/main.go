package main

import (
	"log"
	"os"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/application/service"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/config"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/infrastructure/database"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/infrastructure/repository"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/presentation/http/handler"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/presentation/http/routes"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, &cfg.Pricing); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	rateRepo := repository.NewMetalRateRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	rateService := service.NewMetalRateService(rateRepo)
	pricingService := service.NewPricingService(rateRepo, productRepo, &cfg.Pricing)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, productRepo, customerRepo, pricingService, cfg.Pricing.InvoicePrefix)
	customerService := service.NewCustomerService(customerRepo)
	dashboardService := service.NewDashboardService(orderRepo, productRepo, rateRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Category:  handler.NewCategoryHandler(categoryService),
		MetalRate: handler.NewMetalRateHandler(rateService),
		Pricing:   handler.NewPricingHandler(pricingService),
		Order:     handler.NewOrderHandler(orderService),
		Customer:  handler.NewCustomerHandler(customerService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
