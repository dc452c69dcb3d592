package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arteva/arteva-backend/internal/http/response"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/services"
)

type ExportHandler struct {
	log     *logger.Logger
	exports *services.ExportService
}

func NewExportHandler(log *logger.Logger, exports *services.ExportService) *ExportHandler {
	return &ExportHandler{log: log.With("Handler", "ExportHandler"), exports: exports}
}

type exportRequest struct {
	sceneEnvelope
	ProjectName string `json:"project_name"`
	ProductSlug string `json:"product_slug"`
}

// Export renders the posted scene into the format named in the path and
// streams it back as an attachment.
func (h *ExportHandler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ed, err := editorFromEnvelope(req.sceneEnvelope)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_scene", err)
		return
	}

	format := services.ExportFormat(c.Param("format"))
	artifact, err := h.exports.Export(ed, format, req.ProjectName, req.ProductSlug)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "export_failed", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
