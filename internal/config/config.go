package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// YouTube Data API
	YouTubeAPIKey string
	MaxVideos     int

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Frontend
	FrontendURL string

	// Rate limiting for the analyze endpoint (requests per minute per IP)
	AnalyzeRateLimit int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		Env:              getEnvOrDefault("ENV", "development"),
		YouTubeAPIKey:    mustGetEnv("YOUTUBE_API_KEY"),
		MaxVideos:        getEnvAsIntOrDefault("MAX_VIDEOS", 20),
		GeminiAPIKey:     mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:      getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
		AnalyzeRateLimit: getEnvAsIntOrDefault("ANALYZE_RATE_LIMIT", 10),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
