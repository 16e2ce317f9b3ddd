package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"agentic-backend/internal/models"
)

// GeminiService is the production LLM client behind the agent.LLM interface.
type GeminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey, modelName string) (*GeminiService, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Generate performs one text-completion call. System messages become the
// model's system instruction; the remaining messages are sent as text parts
// of a single user turn. An empty reply is treated as an error so callers
// always hold non-empty answer text on success.
func (s *GeminiService) Generate(ctx context.Context, messages []models.Message) (string, error) {
	// GenerativeModel returns a fresh descriptor, so per-call configuration
	// does not race between concurrent requests.
	model := s.client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)

	var systemParts []genai.Part
	var parts []genai.Part
	for _, msg := range messages {
		if msg.Role == models.RoleSystem {
			systemParts = append(systemParts, genai.Text(msg.Content))
			continue
		}
		parts = append(parts, genai.Text(msg.Content))
	}
	if len(systemParts) > 0 {
		model.SystemInstruction = &genai.Content{Parts: systemParts}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no user content to send to Gemini")
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("Gemini returned an empty response")
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
