package infra

import (
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	GRPCPort           string
	HTTPPort           string
	CartServiceAddr    string
	ProductCatalogAddr string

	// StorageBucket enables S3 persistence; empty selects offline mode.
	// StoragePath enables the filesystem store instead, served under
	// StorageBaseURL.
	StorageBucket  string
	StoragePath    string
	StorageBaseURL string

	GeminiSecretID string
	GeminiAPIKey   string
	GeminiModel    string

	MaxConcurrentGenerations int
	DependencyTimeout        time.Duration
	DialTimeout              time.Duration

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. Nothing is required: every dependency degrades to a
// stub or placeholder mode when unconfigured.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		GRPCPort:           getEnv("PORT", "9100"),
		HTTPPort:           getEnv("HTTP_PORT", "9110"),
		CartServiceAddr:    getEnv("CART_SERVICE_ADDR", "cartservice:7070"),
		ProductCatalogAddr: getEnv("PRODUCT_CATALOG_SERVICE_ADDR", "productcatalogservice:3550"),
		StorageBucket:      os.Getenv("STORAGE_BUCKET"),
		StoragePath:        os.Getenv("STORAGE_PATH"),
		StorageBaseURL:     getEnv("STORAGE_BASE_URL", "http://localhost:9110/static"),
		GeminiSecretID:     getEnv("GEMINI_SECRET_ID", "imagegen/gemini-api-key"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),

		MaxConcurrentGenerations: getEnvInt("MAX_CONCURRENT_GENERATIONS", 8),
		DependencyTimeout:        time.Second * time.Duration(getEnvInt("DEPENDENCY_TIMEOUT_SECONDS", 10)),
		DialTimeout:              time.Second * time.Duration(getEnvInt("DIAL_TIMEOUT_SECONDS", 3)),

		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 60)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
