package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration read from the environment
type Config struct {
	Env        string
	Version    string
	ServerPort string

	DBDriver string
	DBURL    string
	DBPath   string

	LogLevel string
	LogPath  string

	CORSEnabled        bool
	CORSAllowedOrigins []string
}

// NewConfig builds the configuration from environment variables. Call
// godotenv.Load before this to pick up a .env file.
func NewConfig() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		Version:    getEnv("APP_VERSION", "0.1.0"),
		ServerPort: normalizePort(getEnv("SERVER_PORT", ":8100")),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBURL:    getEnv("DB_URL", ""),
		DBPath:   getEnv("DB_PATH", "storage/db.sqlite"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogPath:  getEnv("LOG_PATH", "logs"),

		CORSEnabled:        getEnvBool("CORS_ENABLED", false),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// normalizePort accepts "8100" as well as ":8100"
func normalizePort(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
