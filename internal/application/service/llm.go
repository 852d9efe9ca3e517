package service

import (
	"context"
)

type LLMService interface {
	GenerateChatResponse(ctx context.Context, systemInstruction, userMessage string) (string, error)
}
