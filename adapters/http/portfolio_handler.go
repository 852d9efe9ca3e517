package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opabeer/portfolio-api/internal/application/usecase/content"
	"github.com/opabeer/portfolio-api/internal/domain/portfolio"
)

type PortfolioHandler struct {
	repo *content.Repository
}

func NewPortfolioHandler(repo *content.Repository) *PortfolioHandler {
	return &PortfolioHandler{repo: repo}
}

// GetPortfolio serves the public document. Social icon names are resolved
// against the icon registry here, so unknown names come out as the default
// icon instead of breaking the page.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	doc := h.repo.Get()
	for i := range doc.Socials {
		doc.Socials[i].Icon = portfolio.ResolveIcon(doc.Socials[i].Icon)
	}
	c.JSON(http.StatusOK, doc)
}
