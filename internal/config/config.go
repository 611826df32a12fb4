package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port        string
	DBPath      string
	CatalogPath string // optional YAML overriding category descriptions
	JWTSecret   string
	SessionTTL  time.Duration
	RateLimit   int // requests per minute per client
}

// Load 加载配置
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system env vars")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/coyoacan_clusters.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:        port,
		DBPath:      dbPath,
		CatalogPath: os.Getenv("CATALOG_PATH"),
		JWTSecret:   jwtSecret,
		SessionTTL:  time.Duration(getEnvInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		RateLimit:   getEnvInt("RATE_LIMIT_PER_MINUTE", 300),
	}
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
