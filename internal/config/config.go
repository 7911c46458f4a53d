package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	APIBaseURL     string
	Brand          string
	StateDir       string
	RedisAddr      string
	RequestTimeout time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		APIBaseURL:     getEnvOrDefault("API_BASE_URL", "https://api.planetkebabafrica.com"),
		Brand:          getEnvOrDefault("BRAND", "PlaneteKebab"),
		StateDir:       getEnvOrDefault("STATE_DIR", defaultStateDir()),
		RedisAddr:      strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 30, time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".planet-kebab"
	}
	return filepath.Join(base, "planet-kebab")
}
