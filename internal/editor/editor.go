// Package editor holds the in-memory state of one design session: the
// scene graph of drawable objects, the print-guide overlay derived from the
// product's canvas geometry, and the viewport transform. It knows nothing
// about HTTP or persistence; the adapters around it feed geometry in and
// carry serialized documents out.
package editor

import "github.com/arteva/arteva-backend/internal/types"

// Editor ties a scene to its viewport for one product context. Viewport
// state is transient: a fresh mount starts at zoom 1 with all guides on,
// whatever the loaded project looked like when it was last open.
type Editor struct {
	Scene    *Scene
	Viewport *Viewport
}

func New(geom types.CanvasGeometry, containerWidth float64) *Editor {
	return &Editor{
		Scene:    NewScene(geom, DefaultObjectStyle()),
		Viewport: NewViewport(geom, containerWidth),
	}
}

// SetGeometry switches imprint zone: guides rebuild, the fit recomputes,
// user zoom is left alone.
func (e *Editor) SetGeometry(geom types.CanvasGeometry) {
	e.Scene.SetGeometry(geom)
	e.Viewport.SetGeometry(geom)
}
