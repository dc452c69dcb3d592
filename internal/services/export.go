package services

import (
	"fmt"
	"strings"

	"github.com/arteva/arteva-backend/internal/editor"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/render"
)

type ExportFormat string

const (
	ExportPNG  ExportFormat = "png"
	ExportJPEG ExportFormat = "jpeg"
	ExportSVG  ExportFormat = "svg"
	ExportJSON ExportFormat = "json"
)

// ExportArtifact is a ready-to-download file.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService turns the current scene into downloadable files. Raster
// exports go through the same guarded capture as proofs, so guides and
// zoom never bleed into output.
type ExportService struct {
	log      *logger.Logger
	renderer *render.Renderer
}

func NewExportService(log *logger.Logger, renderer *render.Renderer) *ExportService {
	return &ExportService{
		log:      log.With("service", "ExportService"),
		renderer: renderer,
	}
}

func exportFilename(projectName, productSlug string, ext string) string {
	base := strings.TrimSpace(projectName)
	if base == "" {
		base = strings.TrimSpace(productSlug)
	}
	if base == "" {
		base = "design"
	}
	return base + "." + ext
}

func (s *ExportService) Export(ed *editor.Editor, format ExportFormat, projectName, productSlug string) (*ExportArtifact, error) {
	switch format {
	case ExportPNG:
		artifact, err := s.renderer.Capture(ed, render.FormatPNG)
		if err != nil {
			return nil, err
		}
		return &ExportArtifact{
			Filename:    exportFilename(projectName, productSlug, "png"),
			ContentType: "image/png",
			Data:        artifact.Data,
		}, nil
	case ExportJPEG:
		artifact, err := s.renderer.Capture(ed, render.FormatJPEG)
		if err != nil {
			return nil, err
		}
		return &ExportArtifact{
			Filename:    exportFilename(projectName, productSlug, "jpg"),
			ContentType: "image/jpeg",
			Data:        artifact.Data,
		}, nil
	case ExportSVG:
		return &ExportArtifact{
			Filename:    exportFilename(projectName, productSlug, "svg"),
			ContentType: "image/svg+xml",
			Data:        []byte(render.ExportSVG(ed.Scene)),
		}, nil
	case ExportJSON:
		raw, err := ed.Scene.Document().MarshalIndent()
		if err != nil {
			return nil, err
		}
		return &ExportArtifact{
			Filename:    exportFilename(projectName, productSlug, "json"),
			ContentType: "application/json",
			Data:        raw,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
