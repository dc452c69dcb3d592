package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arteva/arteva-backend/internal/clients/bucket"
	"github.com/arteva/arteva-backend/internal/editor"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/render"
	"github.com/arteva/arteva-backend/internal/storage"
	"github.com/arteva/arteva-backend/internal/types"
	"github.com/arteva/arteva-backend/internal/utils"
)

// ProjectService saves and loads editor sessions against whichever backend
// the caller selected.
type ProjectService struct {
	log      *logger.Logger
	renderer *render.Renderer
	bucket   bucket.Service // nil when no object storage is configured
}

func NewProjectService(log *logger.Logger, renderer *render.Renderer, bucketSvc bucket.Service) *ProjectService {
	return &ProjectService{
		log:      log.With("service", "ProjectService"),
		renderer: renderer,
		bucket:   bucketSvc,
	}
}

type SaveParams struct {
	ID        uuid.UUID // zero on first save
	Name      string
	ProductID string
}

// Save persists the current scene as a full overwrite. The document is
// serialized synchronously before the store call starts, so mutations that
// land while the write is in flight cannot leak into it. The dirty flag
// clears only after the store confirms; a failed save leaves the scene
// dirty for retry.
func (s *ProjectService) Save(ctx context.Context, store storage.ProjectStore, ed *editor.Editor, p SaveParams) (*types.ProjectRecord, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	name := p.Name
	if name == "" {
		name = fmt.Sprintf("%s-draft", p.ProductID)
	}

	doc := ed.Scene.Document()
	raw, err := doc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("serialize scene: %w", err)
	}

	preview := ""
	if previewPNG, err := s.renderer.CapturePreview(ed); err != nil {
		s.log.Warn("Preview capture failed, saving without thumbnail", "project", id, "error", err)
	} else {
		preview = s.previewLocation(ctx, id, previewPNG)
	}

	record := &types.ProjectRecord{
		ID:        id,
		Name:      name,
		ProductID: p.ProductID,
		Scene:     raw,
		Preview:   preview,
		UpdatedAt: time.Now().UTC(),
	}
	if err := store.Save(ctx, record); err != nil {
		return nil, err
	}
	ed.Scene.MarkClean()
	return record, nil
}

// previewLocation stores the thumbnail in the preview bucket and returns
// its public URL. Without a bucket, or when the upload fails, the bytes
// are inlined as a data URL instead so the record always carries a
// renderable preview.
func (s *ProjectService) previewLocation(ctx context.Context, id uuid.UUID, png []byte) string {
	if s.bucket == nil {
		return utils.EncodeDataURL("image/png", png)
	}
	key := fmt.Sprintf("%s.png", id)
	if err := s.bucket.Upload(ctx, bucket.CategoryPreview, key, "image/png", bytes.NewReader(png)); err != nil {
		s.log.Warn("Preview upload failed, inlining thumbnail", "project", id, "error", err)
		return utils.EncodeDataURL("image/png", png)
	}
	return s.bucket.PublicURL(bucket.CategoryPreview, key)
}

// Load replaces the editor scene with a stored project. A missing id is
// not an error; the caller decides how to surface it.
func (s *ProjectService) Load(ctx context.Context, store storage.ProjectStore, ed *editor.Editor, id uuid.UUID) (*types.ProjectRecord, error) {
	record, err := store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	doc, err := types.ParseSceneDocument(record.Scene)
	if err != nil {
		return nil, fmt.Errorf("parse stored scene: %w", err)
	}
	ed.Scene.LoadDocument(doc)
	ed.Scene.MarkClean()
	return record, nil
}
