package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authUC "github.com/opabeer/portfolio-api/internal/application/usecase/auth"
	"github.com/opabeer/portfolio-api/pkg/apperror"
	"github.com/opabeer/portfolio-api/pkg/auth"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

// AuthMiddleware accepts requests carrying a valid session token while the
// persisted session flag is still set. Logout clears the flag, which
// retires every outstanding token at once.
func AuthMiddleware(jwtSvc *auth.JWTService, gate *authUC.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		if _, err := jwtSvc.ValidateToken(tokenString); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if !gate.Authenticated(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has ended"})
			return
		}

		c.Next()
	}
}

// ErrorMiddleware turns AppErrors pushed through c.Error into JSON
// responses; anything else becomes a plain 500.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", appErr)
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("unhandled request error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
