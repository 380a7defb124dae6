package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"chatbot-backend/internal/models"
)

// GeminiGenerator is the alternate generator, selected with
// GENERATOR_PROVIDER=gemini.
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiGenerator(apiKey, model string, temperature float32) (*GeminiGenerator, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

func (g *GeminiGenerator) Close() {
	g.client.Close()
}

func (g *GeminiGenerator) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(g.temperature)

	// System entries configure the model instead of joining the turn
	// history; Gemini only knows "user" and "model" roles.
	var history []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case models.RoleSystem:
			model.SystemInstruction = &genai.Content{
				Parts: []genai.Part{genai.Text(m.Content)},
			}
		case models.RoleAssistant:
			history = append(history, &genai.Content{
				Role:  "model",
				Parts: []genai.Part{genai.Text(m.Content)},
			})
		default:
			history = append(history, &genai.Content{
				Role:  "user",
				Parts: []genai.Part{genai.Text(m.Content)},
			})
		}
	}

	if len(history) == 0 {
		return "", fmt.Errorf("gemini completion: no turns to send")
	}

	last := history[len(history)-1]
	cs := model.StartChat()
	cs.History = history[:len(history)-1]

	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		return "", fmt.Errorf("gemini completion: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			reply.WriteString(string(text))
		}
	}

	return reply.String(), nil
}
