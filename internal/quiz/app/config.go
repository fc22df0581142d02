package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile  string        // Path to the SQLite database file (default: ./quiz.db)
	DBMaxConns    int           // Connection pool ceiling (default: 10)
	JWTSecret     string        // Required: HS256 signing secret for session tokens
	TokenTTL      time.Duration // Session token validity window (default: 1h)
	Issuer        string        // Issuer claim for session tokens (default: quizd)
	AllowedOrigin string        // Browser origin allowed to call the API

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5001)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:  getEnvOrDefault("QUIZ_DATABASE_FILE", "quiz.db"),
		DBMaxConns:    getEnvIntOrDefault("QUIZ_DB_MAX_CONNS", 10),
		JWTSecret:     os.Getenv("QUIZ_JWT_SECRET"), // Required; validated in app.New
		TokenTTL:      getEnvDurationOrDefault("QUIZ_TOKEN_TTL", time.Hour),
		Issuer:        getEnvOrDefault("QUIZ_ISSUER", "quizd"),
		AllowedOrigin: getEnvOrDefault("QUIZ_ALLOWED_ORIGIN", "http://localhost:3000"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5001),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept durations ("1h", "30m") or plain integer minutes
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
