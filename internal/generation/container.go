package generation

import (
	"context"
	"fmt"

	"github.com/sonexa-app/sonexa-api/internal/config"
)

type GenerationContainer struct {
	Service Service
}

func NewGenerationContainer(ctx context.Context, cfg config.Config) (*GenerationContainer, error) {
	var (
		provider Provider
		err      error
	)

	switch cfg.GenerationProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		provider, err = NewGeminiProvider(ctx, cfg.GeminiAPIKey, "gemini-2.0-flash")
		if err != nil {
			return nil, err
		}
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		provider = NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel)
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.GenerationProvider)
	}

	return &GenerationContainer{Service: NewService(provider)}, nil
}
