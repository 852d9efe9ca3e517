package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/opabeer/portfolio-api/internal/application/usecase/auth"
	"github.com/opabeer/portfolio-api/pkg/apperror"
)

type AuthHandler struct {
	gate *authUC.Gate
}

func NewAuthHandler(gate *authUC.Gate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	output, err := h.gate.Login(c.Request.Context(), authUC.LoginInput{Password: req.Password})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.gate.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	input := authUC.ChangeCredentialInput{
		NewSecret:   req.NewPassword,
		ConfirmCopy: req.ConfirmPassword,
	}
	if err := h.gate.ChangeCredential(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}
