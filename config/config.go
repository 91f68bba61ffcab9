package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultModel = "gemini-live-2.5-flash-preview"

type Config struct {
	Port         string
	DataDir      string
	SessionFile  string
	Model        string
	GoogleAPIKey string
	DatabaseURL  string
	LogMode      string
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DataDir:      getEnv("DATA_DIR", "data"),
		SessionFile:  getEnv("SESSION_FILE", "session.yaml"),
		Model:        getEnv("TUTOR_MODEL", DefaultModel),
		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
		DatabaseURL:  getEnv("DB_URL", ""),
		LogMode:      getEnv("LOG_MODE", "dev"),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
