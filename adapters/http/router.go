package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/opabeer/portfolio-api/internal/application/usecase/auth"
	"github.com/opabeer/portfolio-api/pkg/auth"
	"github.com/opabeer/portfolio-api/pkg/logger"
)

// NewRouter builds the full route tree. The server binary and the e2e
// suite share this wiring.
func NewRouter(
	portfolioHandler *PortfolioHandler,
	chatHandler *ChatHandler,
	authHandler *AuthHandler,
	contentHandler *ContentHandler,
	jwtSvc *auth.JWTService,
	gate *authUC.Gate,
	log logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(log))

	authMiddleware := AuthMiddleware(jwtSvc, gate)

	api := router.Group("/api")
	{
		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/portfolio", portfolioHandler.GetPortfolio)
			public.POST("/chat", chatHandler.Chat)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.POST("/auth/logout", authHandler.Logout)
				adminPrivate.PUT("/auth/password", authHandler.ChangePassword)

				contentRoutes := adminPrivate.Group("/content")
				{
					contentRoutes.GET("", contentHandler.Export)
					contentRoutes.PUT("", contentHandler.Import)
					contentRoutes.POST("/reset", contentHandler.Reset)

					contentRoutes.PATCH("/personal", contentHandler.PatchPersonal)
					contentRoutes.POST("/personal/stats", contentHandler.AddStat)
					contentRoutes.PATCH("/personal/stats/:index", contentHandler.PatchStat)
					contentRoutes.DELETE("/personal/stats/:index", contentHandler.DeleteStat)

					contentRoutes.PUT("/stack", contentHandler.SetStack)
					contentRoutes.PUT("/services", contentHandler.SetServices)
					contentRoutes.PUT("/theme", contentHandler.SetTheme)

					contentRoutes.PATCH("/games/:slot", contentHandler.PatchGame)
					contentRoutes.POST("/games/:slot/settings", contentHandler.AddGameSettingRow)
					contentRoutes.PATCH("/games/:slot/settings/:index", contentHandler.PatchGameSettingRow)
					contentRoutes.DELETE("/games/:slot/settings/:index", contentHandler.DeleteGameSettingRow)

					contentRoutes.POST("/sections/:section/items", contentHandler.AddItem)
					contentRoutes.PATCH("/sections/:section/items/:index", contentHandler.PatchItem)
					contentRoutes.DELETE("/sections/:section/items/:index", contentHandler.DeleteItem)
				}
			}
		}
	}

	return router
}
