// Package handlers exposes the editor core over HTTP. The API is
// stateless: every request that operates on a design carries the full
// scene document plus canvas geometry, and the handler rebuilds an editor
// session from them.
package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/arteva/arteva-backend/internal/editor"
	"github.com/arteva/arteva-backend/internal/types"
)

// sceneEnvelope is the request shape shared by export, proof and save.
type sceneEnvelope struct {
	Geometry       types.CanvasGeometry `json:"geometry"`
	Scene          json.RawMessage      `json:"scene"`
	ContainerWidth float64              `json:"container_width"`
}

const defaultContainerWidth = 1200

func editorFromEnvelope(env sceneEnvelope) (*editor.Editor, error) {
	if err := env.Geometry.Validate(); err != nil {
		return nil, fmt.Errorf("geometry: %w", err)
	}
	width := env.ContainerWidth
	if width <= 0 {
		width = defaultContainerWidth
	}
	ed := editor.New(env.Geometry, width)
	if len(env.Scene) > 0 {
		doc, err := types.ParseSceneDocument(env.Scene)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		ed.Scene.LoadDocument(doc)
	}
	return ed, nil
}
