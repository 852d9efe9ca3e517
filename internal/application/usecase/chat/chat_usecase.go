package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/opabeer/portfolio-api/internal/application/service"
	"github.com/opabeer/portfolio-api/internal/application/usecase/content"
	"github.com/opabeer/portfolio-api/internal/domain/portfolio"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

// Fixed degradation strings. A chat failure is never an error to the
// caller: the widget always gets something to display.
const (
	OfflineMessage    = "I'm currently offline (API Key missing). Please contact me directly via email for inquiries."
	ApologyMessage    = "Sorry, I ran into a technical issue. Please try again later."
	EmptyReplyMessage = "I couldn't generate a response at the moment."
)

var tracer = otel.Tracer("chat_usecase")

// ChatUseCase answers visitor questions about the portfolio owner. The
// whole document is sent as context with a fixed instruction preamble. llm
// may be nil when no API credential is configured; the usecase then answers
// with the offline message without attempting a call.
type ChatUseCase struct {
	repo   *content.Repository
	llm    service.LLMService
	logger logger.Logger
}

func NewChatUseCase(repo *content.Repository, llm service.LLMService, log logger.Logger) *ChatUseCase {
	return &ChatUseCase{
		repo:   repo,
		llm:    llm,
		logger: log,
	}
}

type ChatInput struct {
	Message string
}

type ChatOutput struct {
	Response string `json:"response"`
}

func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) *ChatOutput {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	if uc.llm == nil {
		uc.logger.Warn("chat requested but no LLM credential is configured")
		return &ChatOutput{Response: OfflineMessage}
	}

	doc := uc.repo.Get()
	instruction, err := buildSystemInstruction(doc)
	if err != nil {
		uc.logger.Error("failed to build chat instruction", err)
		span.RecordError(err)
		return &ChatOutput{Response: ApologyMessage}
	}

	response, err := uc.llm.GenerateChatResponse(ctx, instruction, input.Message)
	if err != nil {
		uc.logger.Error("chat completion failed", err, zap.String("message", input.Message))
		span.RecordError(err)
		return &ChatOutput{Response: ApologyMessage}
	}
	if response == "" {
		return &ChatOutput{Response: EmptyReplyMessage}
	}

	return &ChatOutput{Response: response}
}

func buildSystemInstruction(doc portfolio.Document) (string, error) {
	contextData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize document for chat context: %w", err)
	}

	owner := fmt.Sprintf("%s %s", doc.Personal.FirstName, doc.Personal.LastName)
	return fmt.Sprintf(`You are an AI assistant for %s's portfolio website.
Your goal is to answer visitor questions about %s based STRICTLY on the provided context data.
Be professional, concise, and friendly.
Do not make up facts. If the answer isn't in the data, suggest they email %s.

Context Data:
%s
`, owner, owner, doc.Personal.Email, contextData), nil
}
