package generation

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/sonexa-app/sonexa-api/internal/config"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds the alternative provider backed by Gemini.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	prompt := system + "\n\n" + user
	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		log.WithError(err).Error("gemini content generation failed")
		return "", fmt.Errorf("generate content: %w", err)
	}
	return result.Text(), nil
}
