package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nishantjoshi-007/NutriScan/models"
)

var DB *gorm.DB

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := DB.AutoMigrate(&models.StorageItem{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// ModelEndpoint returns the generateContent URL for the external model.
func ModelEndpoint() string {
	if url := os.Getenv("GEMINI_API_URL"); url != "" {
		return url
	}
	return defaultGeminiURL
}

func ModelAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}
