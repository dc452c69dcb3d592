package services

import (
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/pdf"
)

// QuoteService wraps the itemized quote generator. Line wording arrives
// pre-localized from the storefront; this layer only assembles the PDF and
// fires the analytics event.
type QuoteService struct {
	log   *logger.Logger
	proof *ProofService
}

func NewQuoteService(log *logger.Logger, proof *ProofService) *QuoteService {
	return &QuoteService{
		log:   log.With("service", "QuoteService"),
		proof: proof,
	}
}

type QuoteParams struct {
	ProductID string
	Locale    string
	Lines     pdf.QuoteOptions
}

func (s *QuoteService) Generate(p QuoteParams) ([]byte, error) {
	doc, err := pdf.GenerateQuote(p.Lines)
	if err != nil {
		return nil, err
	}
	s.proof.dispatchSideChannels("quote", ProofSpec{ProductID: p.ProductID, Locale: p.Locale}, doc)
	return doc, nil
}
