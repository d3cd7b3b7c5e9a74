package utils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenerationClientInterface is the single model boundary of the planning
// pipeline: one prompt in, raw completion text out. No retry lives here;
// each PlanTrip invocation is exactly one attempt and the caller decides
// whether to try again.
type GenerationClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

type GeminiGenerationClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiGenerationClient creates the Gemini client. A missing API key is a
// configuration error and fails here, at startup, not on first use.
func NewGeminiGenerationClient(apiKey, model string, timeout time.Duration) (GenerationClientInterface, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// GenerateItinerary sends the prompt and returns the completion verbatim.
// The endpoint is the dominant latency and failure source, so the call is
// bounded by the configured timeout; timeouts and transport errors both map
// to ErrGenerationUnavailable.
func (c *GeminiGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.4)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("gemini call failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrGenerationUnavailable)
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	return out.String(), nil
}
