package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chatUC "github.com/opabeer/portfolio-api/internal/application/usecase/chat"
	"github.com/opabeer/portfolio-api/pkg/apperror"
)

type ChatHandler struct {
	chatUseCase *chatUC.ChatUseCase
}

func NewChatHandler(uc *chatUC.ChatUseCase) *ChatHandler {
	return &ChatHandler{chatUseCase: uc}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	output := h.chatUseCase.Execute(c.Request.Context(), chatUC.ChatInput{Message: req.Message})

	c.JSON(http.StatusOK, ChatResponse{Response: output.Response})
}
