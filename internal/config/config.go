package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	OpenAIAPIKey string
	Model        string
	// Environment controls whether internal error details are echoed
	// to clients; anything other than "development" suppresses them.
	Environment   string
	LogLevel      string
	AllowedOrigin string
	// PersonaFile optionally points at a YAML file overriding the
	// compiled-in persona.
	PersonaFile     string
	UpstreamTimeout time.Duration
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:            getEnvDefault("PORT", "3000"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		Model:           getEnvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		Environment:     getEnvDefault("APP_ENV", "development"),
		LogLevel:        getEnvDefault("LOG_LEVEL", "info"),
		AllowedOrigin:   getEnvDefault("ALLOWED_ORIGIN", "*"),
		PersonaFile:     os.Getenv("PERSONA_FILE"),
		UpstreamTimeout: time.Duration(getEnvIntDefault("OPENAI_TIMEOUT_SECONDS", 60)) * time.Second,
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("warning: OPENAI_API_KEY is not set; all chat requests will use the fallback response")
	}
	return cfg
}

// IsDevelopment reports whether internal error details may be included
// in responses.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
