package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

const chatSystemPrompt = "You are a friendly, knowledgeable travel assistant. " +
	"Answer questions about destinations, local culture, transport and trip logistics " +
	"in a few short paragraphs. Plain text only, no markdown, no JSON."

type ChatServiceInterface interface {
	Ask(ctx context.Context, req *request_models.ChatRequest) (string, error)
}

// ChatService is the unstructured conversational wrapper around the travel
// assistant. Unlike the planner there is no schema to extract; the completion
// text is returned as-is.
type ChatService struct {
	client *openai.Client
	model  string
}

func NewChatService(apiKey, model string) (ChatServiceInterface, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &ChatService{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (s *ChatService) Ask(ctx context.Context, req *request_models.ChatRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("%w: message is required", utils.ErrInvalidRequest)
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
	}
	// History alternates user/assistant turns, oldest first.
	for i, turn := range req.History {
		role := openai.ChatMessageRoleUser
		if i%2 == 1 {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Message,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		log.Printf("chat completion failed: %v", err)
		return "", utils.ErrGenerationUnavailable
	}
	if len(resp.Choices) == 0 {
		return "", utils.ErrGenerationUnavailable
	}

	return resp.Choices[0].Message.Content, nil
}
