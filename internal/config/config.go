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
	Port      string
	DBPath    string
	JWTSecret string

	// Admin credentials for the token endpoint
	AdminUser     string
	AdminPassword string

	// City center the sample generator builds its gradient around
	CenterLat float64
	CenterLon float64

	// Seed for sample generation and clustering
	Seed int64

	// Cache
	RedisAddr string        // Empty means in-process cache
	CacheTTL  time.Duration

	// Rate limiting
	RateLimit       int
	RateLimitWindow time.Duration
}

// Load 加载配置
func Load() *Config {
	// Optional .env file for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		Port:            getEnv("PORT", ":8080"),
		DBPath:          getEnv("DB_PATH", "./data/uhi.db"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AdminUser:       getEnv("ADMIN_USER", "admin"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "admin"),
		CenterLat:       getEnvFloat("CENTER_LAT", 20.30),
		CenterLon:       getEnvFloat("CENTER_LON", 85.82),
		Seed:            int64(getEnvInt("SEED", 42)),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		CacheTTL:        time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		RateLimit:       getEnvInt("RATE_LIMIT", 120),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %g", key, v, fallback)
		return fallback
	}
	return f
}
