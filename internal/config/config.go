package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Port               string
	DatabaseDSN        string
	JWTSecret          string
	OpenAIKey          string
	OpenAIModel        string
	GeminiAPIKey       string
	GenerationProvider string
	RedisAddr          string
}

// Load reads configuration from a .env file (when present) and the
// environment. Required values are checked by the container at startup, not
// here, so tests can build partial configs.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getEnv("OPENAI_QUIZ_MODEL", "gpt-5-mini"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GenerationProvider: getEnv("GENERATION_PROVIDER", "openai"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
