package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arteva/arteva-backend/internal/http/response"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/services"
)

type ProofHandler struct {
	log    *logger.Logger
	proofs *services.ProofService
}

func NewProofHandler(log *logger.Logger, proofs *services.ProofService) *ProofHandler {
	return &ProofHandler{log: log.With("Handler", "ProofHandler"), proofs: proofs}
}

type proofRequest struct {
	sceneEnvelope
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProjectID    string `json:"project_id"`
	CustomerNote string `json:"customer_note"`
	MethodLabel  string `json:"method_label"`
	ZoneLabel    string `json:"zone_label"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	TotalPrice   string `json:"total_price"`
	SetupFee     string `json:"setup_fee"`
	LeadTime     string `json:"lead_time"`
	Locale       string `json:"locale"`
}

func (h *ProofHandler) Generate(c *gin.Context) {
	var req proofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ed, err := editorFromEnvelope(req.sceneEnvelope)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_scene", err)
		return
	}

	doc, err := h.proofs.Generate(c.Request.Context(), ed, services.ProofSpec{
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		ProjectID:    req.ProjectID,
		CustomerNote: req.CustomerNote,
		MethodLabel:  req.MethodLabel,
		ZoneLabel:    req.ZoneLabel,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		TotalPrice:   req.TotalPrice,
		SetupFee:     req.SetupFee,
		LeadTime:     req.LeadTime,
		Locale:       req.Locale,
	})
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "proof_failed", err)
		return
	}

	filename := "bat.pdf"
	if req.ProductID != "" {
		filename = fmt.Sprintf("bat-%s.pdf", req.ProductID)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}
