package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arteva/arteva-backend/internal/clients/bucket"
	"github.com/arteva/arteva-backend/internal/clients/redisbus"
	"github.com/arteva/arteva-backend/internal/editor"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/pdf"
	"github.com/arteva/arteva-backend/internal/render"
	"github.com/arteva/arteva-backend/internal/utils"
)

// ProofSpec is the order context stamped onto the proof document.
type ProofSpec struct {
	ProductID    string
	ProductName  string
	ProjectID    string
	CustomerNote string
	MethodLabel  string
	ZoneLabel    string
	Quantity     int
	UnitPrice    string
	TotalPrice   string
	SetupFee     string
	LeadTime     string
	Locale       string // "fr" or "ar"
}

// ProofService produces the bon à tirer PDF handed to the customer before
// production. The PDF itself is the deliverable; the event publish and the
// bucket copy are side channels that may fail without the customer noticing.
type ProofService struct {
	log      *logger.Logger
	renderer *render.Renderer
	bus      redisbus.EventBus // nil when redis is not configured
	bucket   bucket.Service    // nil when object storage is not configured
}

func NewProofService(log *logger.Logger, renderer *render.Renderer, bus redisbus.EventBus, store bucket.Service) *ProofService {
	return &ProofService{
		log:      log.With("service", "ProofService"),
		renderer: renderer,
		bus:      bus,
		bucket:   store,
	}
}

// Generate captures the design as JPEG and assembles the proof PDF. On
// success it kicks off the analytics publish and archive upload in the
// background; their failures are logged and never reach the caller.
func (s *ProofService) Generate(ctx context.Context, ed *editor.Editor, spec ProofSpec) ([]byte, error) {
	artifact, err := s.renderer.Capture(ed, render.FormatJPEG)
	if err != nil {
		return nil, fmt.Errorf("capture design: %w", err)
	}

	doc, err := pdf.GenerateBAT(pdf.BATOptions{
		ProductName:    spec.ProductName,
		CustomerNote:   spec.CustomerNote,
		MethodLabel:    spec.MethodLabel,
		ZoneLabel:      spec.ZoneLabel,
		Quantity:       spec.Quantity,
		UnitPrice:      spec.UnitPrice,
		TotalPrice:     spec.TotalPrice,
		SetupFee:       spec.SetupFee,
		LeadTime:       spec.LeadTime,
		PreviewDataURL: utils.EncodeDataURL("image/jpeg", artifact.Data),
		Locale:         spec.Locale,
		CanvasWidth:    artifact.Width,
		CanvasHeight:   artifact.Height,
	})
	if err != nil {
		return nil, err
	}

	s.dispatchSideChannels("bat", spec, doc)
	return doc, nil
}

// dispatchSideChannels publishes the analytics event and archives a copy,
// detached from the request. A fresh context is used so the download
// completing does not cancel them.
func (s *ProofService) dispatchSideChannels(kind string, spec ProofSpec, doc []byte) {
	if s.bus == nil && s.bucket == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if s.bus != nil {
			event := redisbus.ProofEvent{
				Kind:      kind,
				ProductID: spec.ProductID,
				ProjectID: spec.ProjectID,
				Locale:    spec.Locale,
				Bytes:     len(doc),
				At:        time.Now().UTC(),
			}
			if err := s.bus.Publish(ctx, event); err != nil {
				s.log.Warn("Proof event publish failed", "kind", kind, "error", err)
			}
		}

		if s.bucket != nil {
			key := fmt.Sprintf("%s/%s.pdf", kind, uuid.NewString())
			if err := s.bucket.Upload(ctx, bucket.CategoryProof, key, "application/pdf", bytes.NewReader(doc)); err != nil {
				s.log.Warn("Proof archive upload failed", "kind", kind, "key", key, "error", err)
			}
		}
	}()
}
