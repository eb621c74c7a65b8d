package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	SQLitePath      string
	ServerPort      string
	JWTSecret       string
	RedisURL        string
	RateLimit       int
	RateLimitWindow int
	CatalogPath     string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBDriver:        getEnv("DB_DRIVER", "postgres"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "siteops_user"),
		DBPassword:      getEnv("DB_PASSWORD", "siteops_pass"),
		DBName:          getEnv("DB_NAME", "siteops_db"),
		SQLitePath:      getEnv("SQLITE_PATH", "./siteops.db"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "supersecretkey"),
		RedisURL:        getEnv("REDIS_URL", ""),
		RateLimit:       getEnvAsInt("RATE_LIMIT", 100),
		RateLimitWindow: getEnvAsInt("RATE_LIMIT_WINDOW", 60),
		CatalogPath:     getEnv("CATALOG_PATH", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultVal
}
