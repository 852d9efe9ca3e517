package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opabeer/portfolio-api/internal/application/usecase/content"
	"github.com/opabeer/portfolio-api/pkg/apperror"
)

type ContentHandler struct {
	editUseCase   *content.EditUseCase
	importUseCase *content.ImportUseCase
}

func NewContentHandler(edit *content.EditUseCase, imp *content.ImportUseCase) *ContentHandler {
	return &ContentHandler{
		editUseCase:   edit,
		importUseCase: imp,
	}
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("index must be an integer", err))
		return 0, false
	}
	return index, true
}

func confirmQuery(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}

// Export returns the full document as indented JSON for the raw editor.
func (h *ContentHandler) Export(c *gin.Context) {
	raw, err := h.importUseCase.Export()
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// Import replaces the whole document with the request body after
// validation. The body is the raw serialized document, not a wrapper DTO.
func (h *ContentHandler) Import(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}

	if err := h.importUseCase.Apply(c.Request.Context(), raw); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "document updated"})
}

func (h *ContentHandler) Reset(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if err := h.editUseCase.Reset(c.Request.Context(), req.Confirm); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "document reset to defaults"})
}

func (h *ContentHandler) AddItem(c *gin.Context) {
	if err := h.editUseCase.AddItem(c.Request.Context(), c.Param("section")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "item added"})
}

func (h *ContentHandler) DeleteItem(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.editUseCase.DeleteItem(c.Request.Context(), c.Param("section"), index, confirmQuery(c)); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "item deleted"})
}

func (h *ContentHandler) PatchItem(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	var req PatchFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if err := h.editUseCase.PatchField(c.Request.Context(), c.Param("section"), index, req.Field, req.Value); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "item updated"})
}

func (h *ContentHandler) PatchPersonal(c *gin.Context) {
	var req PatchStringFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if err := h.editUseCase.SetPersonalField(c.Request.Context(), req.Field, req.Value); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "profile updated"})
}

func (h *ContentHandler) AddStat(c *gin.Context) {
	if err := h.editUseCase.AddStat(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "stat added"})
}

func (h *ContentHandler) DeleteStat(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.editUseCase.DeleteStat(c.Request.Context(), index, confirmQuery(c)); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "stat deleted"})
}

func (h *ContentHandler) PatchStat(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	var req PatchStringFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if err := h.editUseCase.PatchStat(c.Request.Context(), index, req.Field, req.Value); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "stat updated"})
}

func (h *ContentHandler) SetStack(c *gin.Context) {
	var req ListTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if err := h.editUseCase.SetStack(c.Request.Context(), req.Values); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "stack updated"})
}

func (h *ContentHandler) SetServices(c *gin.Context) {
	var req ListTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if err := h.editUseCase.SetServices(c.Request.Context(), req.Values); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "services updated"})
}

func (h *ContentHandler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	var err error
	switch {
	case req.Hex != "":
		err = h.editUseCase.SetCustomTheme(c.Request.Context(), req.Hex)
	case req.Preset != "":
		err = h.editUseCase.SetThemePreset(c.Request.Context(), req.Preset)
	default:
		err = apperror.NewInvalidInput("either preset or hex is required", nil)
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "theme updated"})
}

func (h *ContentHandler) PatchGame(c *gin.Context) {
	var req PatchStringFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if err := h.editUseCase.SetGameInfo(c.Request.Context(), c.Param("slot"), req.Field, req.Value); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "game updated"})
}

func (h *ContentHandler) AddGameSettingRow(c *gin.Context) {
	if err := h.editUseCase.AddGameSettingRow(c.Request.Context(), c.Param("slot")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "setting added"})
}

func (h *ContentHandler) DeleteGameSettingRow(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.editUseCase.DeleteGameSettingRow(c.Request.Context(), c.Param("slot"), index); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "setting deleted"})
}

func (h *ContentHandler) PatchGameSettingRow(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	var req PatchStringFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	if err := h.editUseCase.PatchGameSettingRow(c.Request.Context(), c.Param("slot"), index, req.Field, req.Value); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "setting updated"})
}
