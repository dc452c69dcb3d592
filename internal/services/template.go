package services

import (
	"fmt"

	"github.com/arteva/arteva-backend/internal/editor"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/templates"
	"github.com/arteva/arteva-backend/internal/types"
)

// TemplateService lists catalog templates and applies them to an editor
// session.
type TemplateService struct {
	log     *logger.Logger
	catalog *templates.Catalog
}

func NewTemplateService(log *logger.Logger, catalog *templates.Catalog) *TemplateService {
	return &TemplateService{
		log:     log.With("service", "TemplateService"),
		catalog: catalog,
	}
}

func (s *TemplateService) ForProduct(productID string) []*types.DesignTemplate {
	return s.catalog.ForProduct(productID)
}

func (s *TemplateService) All() []*types.DesignTemplate {
	return s.catalog.All()
}

// Apply replaces the scene with the template canvas. Unlike loading a
// saved project, an applied template counts as unsaved work, so the scene
// comes out dirty.
func (s *TemplateService) Apply(ed *editor.Editor, templateID string) error {
	t := s.catalog.ByID(templateID)
	if t == nil {
		return fmt.Errorf("unknown template %q", templateID)
	}
	ed.Scene.LoadDocument(t.Canvas)
	ed.Scene.MarkDirty()
	return nil
}
