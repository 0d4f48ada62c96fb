package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/config"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/entity"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/pkg/utils"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},

		// Catalog entities
		&entity.Category{},
		&entity.Product{},
		&entity.MetalRate{},

		// Sales entities
		&entity.Customer{},
		&entity.Order{},
		&entity.OrderItem{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// DefaultCategories returns the categories seeded on a fresh install. They
// belong to no staff account, so UserID stays nil.
func DefaultCategories() []entity.Category {
	names := []string{"Rings", "Chains", "Bangles", "Earrings", "Necklaces", "Silver Articles"}
	categories := make([]entity.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, entity.Category{
			Name: name,
			Slug: utils.Slugify(name),
		})
	}
	return categories
}

// DefaultMetalRates returns the rates seeded on a fresh install so the
// terminal can price before the first manual rate update. The purity lives
// in MaterialType, which is what the rate lookup keys on.
func DefaultMetalRates(cfg *config.PricingConfig) []entity.MetalRate {
	return []entity.MetalRate{
		{MaterialName: "Gold", MaterialType: "24K", PricePerGram: cfg.DefaultGoldRate},
		{MaterialName: "Gold", MaterialType: "22K", PricePerGram: cfg.DefaultGoldRate * 22 / 24},
		{MaterialName: "Gold", MaterialType: "18K", PricePerGram: cfg.DefaultGoldRate * 18 / 24},
		{MaterialName: "Silver", MaterialType: "925", PricePerGram: 90},
	}
}

// SeedDefaultData seeds the database with default categories, metal rates
// and the admin user configured via environment variables
func SeedDefaultData(db *gorm.DB, cfg *config.PricingConfig) error {
	log.Println("Seeding default data...")

	for _, category := range DefaultCategories() {
		var existing entity.Category
		if err := db.Where("name = ?", category.Name).First(&existing).Error; err != nil {
			if err := db.Create(&category).Error; err != nil {
				log.Printf("Warning: failed to create category %s: %v", category.Name, err)
			}
		}
	}

	rates := DefaultMetalRates(cfg)
	for i := range rates {
		var existing entity.MetalRate
		err := db.Where("material_name = ? AND material_type = ?",
			rates[i].MaterialName, rates[i].MaterialType).First(&existing).Error
		if err != nil {
			if err := db.Create(&rates[i]).Error; err != nil {
				log.Printf("Warning: failed to create metal rate %s %s: %v",
					rates[i].MaterialName, rates[i].MaterialType, err)
			}
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Store Admin"
				}
				// Split admin name into first and last name
				firstName := adminName
				lastName := ""
				for i, c := range adminName {
					if c == ' ' {
						firstName = adminName[:i]
						lastName = adminName[i+1:]
						break
					}
				}
				adminUser := entity.User{
					ID:        uuid.New(),
					FirstName: firstName,
					LastName:  lastName,
					Email:     adminEmail,
					Password:  string(hashedPassword),
					Role:      entity.RoleAdmin,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
