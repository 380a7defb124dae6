package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"chatbot-backend/internal/models"
)

// OpenAIGenerator is the default generator, backed by the OpenAI chat
// completions API.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAIGenerator(apiKey, baseURL, model string, temperature float32) *OpenAIGenerator {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		temperature: temperature,
	}
}

func (g *OpenAIGenerator) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	history := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		history = append(history, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages:    history,
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
