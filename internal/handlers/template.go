package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arteva/arteva-backend/internal/http/response"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/services"
)

type TemplateHandler struct {
	log       *logger.Logger
	templates *services.TemplateService
}

func NewTemplateHandler(log *logger.Logger, templates *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{log: log.With("Handler", "TemplateHandler"), templates: templates}
}

func (h *TemplateHandler) List(c *gin.Context) {
	if productID := c.Query("productId"); productID != "" {
		response.RespondOK(c, h.templates.ForProduct(productID))
		return
	}
	response.RespondOK(c, h.templates.All())
}

type applyTemplateRequest struct {
	sceneEnvelope
}

// Apply loads the template canvas into a fresh session and returns the
// resulting scene document. The result counts as unsaved work.
func (h *TemplateHandler) Apply(c *gin.Context) {
	var req applyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ed, err := editorFromEnvelope(req.sceneEnvelope)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_scene", err)
		return
	}
	if err := h.templates.Apply(ed, c.Param("id")); err != nil {
		response.RespondError(c, http.StatusNotFound, "unknown_template", err)
		return
	}
	response.RespondOK(c, gin.H{
		"scene": ed.Scene.Document(),
		"dirty": ed.Scene.IsDirty(),
	})
}
