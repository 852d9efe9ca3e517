package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/opabeer/portfolio-api/internal/application/service"
	"github.com/opabeer/portfolio-api/internal/config"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

type openAIAdapter struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

// NewOpenAIAdapter talks to any OpenAI-compatible chat-completion endpoint
// (the hosted Gemini endpoint in production). It refuses to construct
// without an API key; the caller decides how to degrade.
func NewOpenAIAdapter(cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("LLM API key is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.LLM.APIKey)
	if cfg.LLM.BaseURL != "" {
		clientConfig.BaseURL = cfg.LLM.BaseURL
	}

	client := openai.NewClientWithConfig(clientConfig)

	log.Info("Chat (LLM) Adapter initialized")
	return &openAIAdapter{client: client, model: cfg.LLM.Model, log: log}, nil
}

func (a *openAIAdapter) GenerateChatResponse(ctx context.Context, systemInstruction, userMessage string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userMessage,
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
