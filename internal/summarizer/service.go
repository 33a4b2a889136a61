// Package summarizer turns a submitted brief into a short prose summary via
// the Gemini API. Callers treat it as an opaque request → text call and apply
// their own fallback on failure.
package summarizer

import (
	"context"
	"errors"
	"fmt"

	"pyronix-studio/internal/pkg/model"
	"pyronix-studio/pkg"

	"google.golang.org/genai"
)

var ErrNotConfigured = errors.New("summarizer is not configured")

type Service interface {
	Summarize(ctx context.Context, order model.Order) (string, error)
}

type GeminiService struct {
	client *genai.Client
	model  string
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  modelName,
	}, nil
}

func (s *GeminiService) Summarize(ctx context.Context, order model.Order) (string, error) {
	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(BuildPrompt(order)), nil)
	if err != nil {
		return "", &pkg.ErrExternalCall{Service: "gemini", Err: err}
	}

	text := result.Text()
	if text == "" {
		return "", &pkg.ErrExternalCall{Service: "gemini", Err: errors.New("empty response")}
	}
	return text, nil
}

// Unavailable stands in when no API key is configured. Every call fails, so
// the caller's fallback summary applies.
type Unavailable struct{}

func (Unavailable) Summarize(ctx context.Context, order model.Order) (string, error) {
	return "", ErrNotConfigured
}
