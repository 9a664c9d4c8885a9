package generation

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sonexa-app/sonexa-api/internal/config"
)

// Provider issues a single synchronous completion request against an external
// model and returns the raw text payload. No retry, no caching, no streaming.
// An empty or missing content field is normalized to "" so the validator can
// reject it; transport failures propagate to the caller.
type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type openAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model string) Provider {
	return &openAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (p *openAIProvider) Complete(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		log.WithError(err).Error("chat completion request failed")
		return "", fmt.Errorf("request chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
