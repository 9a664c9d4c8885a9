package config_test

import (
	"testing"

	"github.com/sonexa-app/sonexa-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_QUIZ_MODEL", "")
	t.Setenv("GENERATION_PROVIDER", "")

	cfg := config.Load()

	if cfg.Port != "8080" {
		t.Errorf("want default port 8080, got %q", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-5-mini" {
		t.Errorf("want default model gpt-5-mini, got %q", cfg.OpenAIModel)
	}
	if cfg.GenerationProvider != "openai" {
		t.Errorf("want default provider openai, got %q", cfg.GenerationProvider)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_QUIZ_MODEL", "gpt-5")
	t.Setenv("GENERATION_PROVIDER", "gemini")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := config.Load()

	if cfg.Port != "9090" {
		t.Errorf("PORT override ignored: %q", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-5" {
		t.Errorf("OPENAI_QUIZ_MODEL override ignored: %q", cfg.OpenAIModel)
	}
	if cfg.GenerationProvider != "gemini" {
		t.Errorf("GENERATION_PROVIDER override ignored: %q", cfg.GenerationProvider)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("REDIS_ADDR override ignored: %q", cfg.RedisAddr)
	}
}
