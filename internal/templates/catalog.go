// Package templates loads the pre-authored design templates offered in the
// editor sidebar from a YAML catalog file.
package templates

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/types"
)

type catalogFile struct {
	Templates []templateEntry `yaml:"templates"`
}

// templateEntry keeps the canvas as a free-form YAML map and converts it
// through JSON, so the catalog file and the scene wire format can never
// drift apart.
type templateEntry struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	NameKey      string         `yaml:"name_key"`
	Thumbnail    string         `yaml:"thumbnail"`
	ProductTypes []string       `yaml:"product_types"`
	Canvas       map[string]any `yaml:"canvas"`
}

type Catalog struct {
	log       *logger.Logger
	templates []*types.DesignTemplate
}

func LoadCatalog(path string, log *logger.Logger) (*Catalog, error) {
	catalogLog := log.With("service", "TemplateCatalog")

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse template catalog: %w", err)
	}

	out := make([]*types.DesignTemplate, 0, len(file.Templates))
	for _, entry := range file.Templates {
		doc, err := entryToDocument(entry.Canvas)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", entry.ID, err)
		}
		out = append(out, &types.DesignTemplate{
			ID:           entry.ID,
			Name:         entry.Name,
			NameKey:      entry.NameKey,
			Thumbnail:    entry.Thumbnail,
			ProductTypes: entry.ProductTypes,
			Canvas:       doc,
		})
	}
	catalogLog.Info("Template catalog loaded", "count", len(out), "path", path)
	return &Catalog{log: catalogLog, templates: out}, nil
}

// NewCatalog builds an in-memory catalog, used by tests and as the empty
// fallback when no catalog file is configured.
func NewCatalog(templates []*types.DesignTemplate, log *logger.Logger) *Catalog {
	return &Catalog{log: log.With("service", "TemplateCatalog"), templates: templates}
}

func entryToDocument(canvas map[string]any) (*types.SceneDocument, error) {
	raw, err := json.Marshal(canvas)
	if err != nil {
		return nil, err
	}
	return types.ParseSceneDocument(raw)
}

// ForProduct returns the templates compatible with the given product id.
func (c *Catalog) ForProduct(productID string) []*types.DesignTemplate {
	out := []*types.DesignTemplate{}
	for _, t := range c.templates {
		if t.CompatibleWith(productID) {
			out = append(out, t)
		}
	}
	return out
}

// ByID returns nil for unknown ids.
func (c *Catalog) ByID(id string) *types.DesignTemplate {
	for _, t := range c.templates {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (c *Catalog) All() []*types.DesignTemplate {
	return c.templates
}
