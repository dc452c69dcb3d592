package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arteva/arteva-backend/internal/http/response"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/pdf"
	"github.com/arteva/arteva-backend/internal/services"
)

type QuoteHandler struct {
	log    *logger.Logger
	quotes *services.QuoteService
}

func NewQuoteHandler(log *logger.Logger, quotes *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{log: log.With("Handler", "QuoteHandler"), quotes: quotes}
}

type quoteRequest struct {
	ProductID     string   `json:"product_id"`
	Locale        string   `json:"locale"`
	HeaderLines   []string `json:"header_lines"`
	CustomerLines []string `json:"customer_lines"`
	ItemLines     []string `json:"item_lines"`
	DiscountLines []string `json:"discount_lines"`
	TotalLine     string   `json:"total_line"`
	NotesLines    []string `json:"notes_lines"`
	FooterLines   []string `json:"footer_lines"`
}

func (h *QuoteHandler) Generate(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	doc, err := h.quotes.Generate(services.QuoteParams{
		ProductID: req.ProductID,
		Locale:    req.Locale,
		Lines: pdf.QuoteOptions{
			HeaderLines:   req.HeaderLines,
			CustomerLines: req.CustomerLines,
			ItemLines:     req.ItemLines,
			DiscountLines: req.DiscountLines,
			TotalLine:     req.TotalLine,
			NotesLines:    req.NotesLines,
			FooterLines:   req.FooterLines,
		},
	})
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "quote_failed", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="quote.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
