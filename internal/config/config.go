package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Cache    CacheConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	EventTopic         string
}

type DatabaseConfig struct {
	Connection string
}

// APIKeys holds the external collaborator credentials. An empty key means
// the collaborator is unconfigured and its live tier is skipped for the
// whole process lifetime.
type APIKeys struct {
	GoogleGemini string
	WeatherAPI   string
	RapidAPI     string
}

type CacheConfig struct {
	WeatherTTLMinutes   int
	CommodityTTLMinutes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			EventTopic:         getEnv("EVENT_TOPIC", "weather_alerts"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GEMINI_API_KEY", ""),
			WeatherAPI:   getEnv("WEATHER_API_KEY", ""),
			RapidAPI:     getEnv("RAPIDAPI_KEY", ""),
		},
		Cache: CacheConfig{
			WeatherTTLMinutes:   getEnvAsInt("WEATHER_CACHE_TTL_MINUTES", 15),
			CommodityTTLMinutes: getEnvAsInt("COMMODITY_CACHE_TTL_MINUTES", 60),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
