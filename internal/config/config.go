package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the listen address of the store server.
	Addr string
	// StoreBaseURL is where the synchronizers reach the store.
	StoreBaseURL string
	// DatabaseURL switches the store server to Postgres when set.
	DatabaseURL string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	return Config{
		Addr:         getEnv("STOREFRONT_ADDR", ":3001"),
		StoreBaseURL: getEnv("STORE_BASE_URL", "http://localhost:3001"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
