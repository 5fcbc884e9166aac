package config

import (
	"os"
	"path/filepath"
	"time"
)

// devSecretKey is a base64 development fallback; override SECRET_KEY in
// any real deployment.
const devSecretKey = "Y2hhbmdlLW1lLWluLXByb2R1Y3Rpb24tY2hhbmdlLW1lIQ=="

type Config struct {
	Port        string
	DBPath      string
	SecretKey   string
	TokenTTL    time.Duration
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", filepath.Join("data", "expenses.db")),
		SecretKey:   getEnv("SECRET_KEY", devSecretKey),
		TokenTTL:    getEnvDuration("TOKEN_TTL", time.Hour),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
