package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"alfredoptarigan/talentscout/internal/redact"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Redact  RedactConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type RedactConfig struct {
	Salt string
}

type StorageConfig struct {
	DataDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	salt := getEnv("HASH_SALT", "")
	if salt == "" {
		log.Println("⚠️  HASH_SALT not set, falling back to the development default. Override it in production.")
		salt = redact.DefaultSalt
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: getEnvAsDuration("GEMINI_TIMEOUT", "10s"),
		},
		Redact: RedactConfig{
			Salt: salt,
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "./data"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
