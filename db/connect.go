package db

import (
	"fmt"
	"log"
	"os"
	"strings"

	"carrot-server/entities"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect() (Database, error) {
	var dsn string

	// Check if DB_URL is provided (connection string)
	dbURL := os.Getenv("DB_URL")
	if dbURL != "" {
		dsn = dbURL

		// Hosted databases want SSL; add it when the URL doesn't say
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}

		log.Println("Connecting to database using DB_URL...")
	} else {
		// Build DSN from individual parameters
		dbHost := os.Getenv("DB_HOST")
		dbPort := os.Getenv("DB_PORT")
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")

		if dbHost == "" || dbPort == "" || dbUser == "" || dbPassword == "" || dbName == "" {
			return nil, fmt.Errorf("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}

		sslMode := "require"
		if dbHost == "localhost" || dbHost == "127.0.0.1" {
			sslMode = "disable"
		}

		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			dbHost, dbUser, dbPassword, dbName, dbPort, sslMode)
		log.Printf("Connecting to database using individual parameters (sslmode=%s)...", sslMode)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	log.Println("Database connection established successfully!")

	log.Println("Running database migrations...")
	if err := gormDB.AutoMigrate(&entities.User{}, &entities.Todo{}, &entities.Item{}, &entities.Inventory{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedItems(gormDB); err != nil {
		return nil, fmt.Errorf("failed to seed item catalog: %w", err)
	}

	return &GormDatabase{DB: gormDB}, nil
}

// seedItems inserts the starter catalog once, on an empty items table.
// The catalog is immutable at runtime so there is no upsert path.
func seedItems(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&entities.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entities.Item{
		{Name: "Straw Hat", Price: 5, ItemType: entities.ItemTypeHat, ImageURL: "/images/items/straw_hat.png"},
		{Name: "Top Hat", Price: 10, ItemType: entities.ItemTypeHat, ImageURL: "/images/items/top_hat.png"},
		{Name: "Wizard Hat", Price: 20, ItemType: entities.ItemTypeHat, ImageURL: "/images/items/wizard_hat.png"},
		{Name: "Round Glasses", Price: 5, ItemType: entities.ItemTypeAccessory, ImageURL: "/images/items/round_glasses.png"},
		{Name: "Red Scarf", Price: 8, ItemType: entities.ItemTypeAccessory, ImageURL: "/images/items/red_scarf.png"},
		{Name: "Gold Bell", Price: 15, ItemType: entities.ItemTypeAccessory, ImageURL: "/images/items/gold_bell.png"},
	}
	if err := gormDB.Create(&items).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d catalog items", len(items))
	return nil
}
