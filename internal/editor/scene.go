package editor

import (
	"github.com/google/uuid"

	"github.com/arteva/arteva-backend/internal/types"
)

// duplicateOffset shifts a clone down-right so it is visibly distinct from
// its source, in logical canvas units.
const duplicateOffset = 40

type ReorderDirection string

const (
	ReorderForward  ReorderDirection = "forward"
	ReorderBackward ReorderDirection = "backward"
)

// Scene is the mutable scene graph for one editing session. Objects are
// kept in paint order, back to front; guides live outside the object list
// so z-order operations and serialization never see them. A Scene is owned
// by a single goroutine; it does no locking of its own.
type Scene struct {
	geom       types.CanvasGeometry
	style      ObjectStyle
	background string

	objects   []*types.SceneObject
	guides    guideSet
	guideVis  GuideVisibility
	selection map[string]struct{}
	dirty     bool
}

func NewScene(geom types.CanvasGeometry, style ObjectStyle) *Scene {
	s := &Scene{
		geom:       geom,
		style:      style,
		background: "#ffffff",
		guideVis:   DefaultGuideVisibility(),
		selection:  map[string]struct{}{},
	}
	s.guides = buildGuides(geom, s.guideVis)
	return s
}

func (s *Scene) Geometry() types.CanvasGeometry { return s.geom }
func (s *Scene) Background() string             { return s.background }
func (s *Scene) IsDirty() bool                  { return s.dirty }
func (s *Scene) MarkClean()                     { s.dirty = false }
func (s *Scene) MarkDirty()                     { s.dirty = true }

func (s *Scene) SetBackground(color string) {
	if color == "" || color == s.background {
		return
	}
	s.background = color
	s.dirty = true
}

// SetGeometry swaps the canvas geometry, as happens when the surrounding
// page switches imprint zone or product. Guides are rebuilt from scratch;
// the old instances are discarded. Guide churn never dirties the project.
func (s *Scene) SetGeometry(geom types.CanvasGeometry) {
	s.geom = geom
	s.guides = buildGuides(geom, s.guideVis)
}

func (s *Scene) GuideVisibility() GuideVisibility { return s.guideVis }

func (s *Scene) SetGuideVisibility(vis GuideVisibility) {
	s.guideVis = vis
	s.guides.applyVisibility(vis)
}

func (s *Scene) GuideRect(kind GuideKind) *types.SceneObject { return s.guides.rect(kind) }

// GuideRects returns the overlay rectangles in paint order.
func (s *Scene) GuideRects() []*types.SceneObject { return s.guides.ordered() }

// centered places an object in the middle of the canvas with center-center
// origin, so a freshly added object is visible whatever the canvas size.
func (s *Scene) centered(obj *types.SceneObject) {
	obj.Left = float64(s.geom.Width) / 2
	obj.Top = float64(s.geom.Height) / 2
	obj.OriginX = types.OriginCenter
	obj.OriginY = types.OriginCenter
}

func (s *Scene) insert(obj *types.SceneObject) string {
	obj.ID = uuid.NewString()
	s.objects = append(s.objects, obj)
	s.selectOnly(obj.ID)
	s.dirty = true
	return obj.ID
}

// AddText adds a centered text box. A nil preset gives the default
// placeholder text in the storefront font.
func (s *Scene) AddText(preset *TextPreset) string {
	obj := &types.SceneObject{
		Kind:       types.ObjectText,
		Text:       "Votre texte ici",
		FontSize:   s.style.TextSize,
		Fill:       s.style.TextFill,
		FontFamily: s.style.TextFont,
		TextAlign:  "center",
	}
	if preset != nil {
		if preset.Text != "" {
			obj.Text = preset.Text
		}
		if preset.FontSize > 0 {
			obj.FontSize = preset.FontSize
		}
		if preset.FontWeight != "" {
			obj.FontWeight = preset.FontWeight
		}
		if preset.Fill != "" {
			obj.Fill = preset.Fill
		}
	}
	s.centered(obj)
	return s.insert(obj)
}

// AddShape adds one of the stock shapes. Unknown kinds return an empty id.
func (s *Scene) AddShape(kind types.ObjectKind) string {
	obj := s.style.newShape(kind)
	if obj == nil {
		return ""
	}
	s.centered(obj)
	return s.insert(obj)
}

// AddImage adds an uploaded bitmap, scaled so it spans half the canvas
// width like the storefront editor does on upload.
func (s *Scene) AddImage(src string, naturalWidth, naturalHeight float64) string {
	if src == "" || naturalWidth <= 0 || naturalHeight <= 0 {
		return ""
	}
	scale := (float64(s.geom.Width) / 2) / naturalWidth
	obj := &types.SceneObject{
		Kind:   types.ObjectImage,
		Src:    src,
		Width:  naturalWidth,
		Height: naturalHeight,
		ScaleX: scale,
		ScaleY: scale,
	}
	s.centered(obj)
	return s.insert(obj)
}

func (s *Scene) indexOf(id string) int {
	for i, obj := range s.objects {
		if obj.ID == id {
			return i
		}
	}
	return -1
}

// ObjectByID returns the live object, or nil for unknown or guide ids.
func (s *Scene) ObjectByID(id string) *types.SceneObject {
	if i := s.indexOf(id); i >= 0 {
		return s.objects[i]
	}
	return nil
}

// Duplicate clones every property of the source, mints a fresh id, offsets
// the clone down-right and selects it. Unknown ids are a no-op.
func (s *Scene) Duplicate(id string) string {
	i := s.indexOf(id)
	if i < 0 {
		return ""
	}
	clone := *s.objects[i]
	if clone.Visible != nil {
		v := *clone.Visible
		clone.Visible = &v
	}
	if clone.StrokeDashArray != nil {
		clone.StrokeDashArray = append([]int(nil), clone.StrokeDashArray...)
	}
	clone.Left += duplicateOffset
	clone.Top += duplicateOffset
	return s.insert(&clone)
}

// Remove deletes the given objects. Stale ids are silently skipped.
func (s *Scene) Remove(ids []string) {
	removed := false
	for _, id := range ids {
		i := s.indexOf(id)
		if i < 0 {
			continue
		}
		s.objects = append(s.objects[:i], s.objects[i+1:]...)
		delete(s.selection, id)
		removed = true
	}
	if removed {
		s.dirty = true
	}
}

// Reorder moves one object a single step in paint order. At the top or
// bottom of the stack it is a no-op, as is an unknown id.
func (s *Scene) Reorder(id string, dir ReorderDirection) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	switch dir {
	case ReorderForward:
		if i+1 >= len(s.objects) {
			return
		}
		s.objects[i], s.objects[i+1] = s.objects[i+1], s.objects[i]
	case ReorderBackward:
		if i == 0 {
			return
		}
		s.objects[i], s.objects[i-1] = s.objects[i-1], s.objects[i]
	default:
		return
	}
	s.dirty = true
}

// OrderedVisibleObjects returns the paintable scene, back to front, guides
// excluded.
func (s *Scene) OrderedVisibleObjects() []*types.SceneObject {
	out := make([]*types.SceneObject, 0, len(s.objects))
	for _, obj := range s.objects {
		if obj.Guide || !obj.IsVisible() {
			continue
		}
		out = append(out, obj)
	}
	return out
}

// ObjectCount is the number of non-guide objects, visible or not.
func (s *Scene) ObjectCount() int { return len(s.objects) }

// Document serializes the scene for persistence, export and templates.
// Guides never appear in the output.
func (s *Scene) Document() *types.SceneDocument {
	objs := make([]*types.SceneObject, 0, len(s.objects))
	for _, obj := range s.objects {
		cp := *obj
		objs = append(objs, &cp)
	}
	return &types.SceneDocument{
		Version:    types.SceneDocumentVersion,
		Background: s.background,
		Objects:    objs,
	}
}

// LoadDocument replaces the whole scene with the given document, re-seeds
// the guides and clears the selection. Project loads, template loads and
// JSON import all go through here. Entries flagged as guides are dropped.
// The caller decides the resulting dirty state: a template load dirties
// the project, a project load does not.
func (s *Scene) LoadDocument(doc *types.SceneDocument) {
	s.objects = nil
	s.selection = map[string]struct{}{}
	if doc == nil {
		s.guides = buildGuides(s.geom, s.guideVis)
		return
	}
	if doc.Background != "" {
		s.background = doc.Background
	}
	for _, obj := range doc.Objects {
		if obj == nil || obj.Guide {
			continue
		}
		cp := *obj
		if cp.ID == "" {
			cp.ID = uuid.NewString()
		}
		s.objects = append(s.objects, &cp)
	}
	s.guides = buildGuides(s.geom, s.guideVis)
}

// ---- selection ----

func (s *Scene) selectOnly(id string) {
	s.selection = map[string]struct{}{id: {}}
}

// Select replaces the selection with the given ids; unknown and guide ids
// are ignored.
func (s *Scene) Select(ids ...string) {
	next := map[string]struct{}{}
	for _, id := range ids {
		if s.indexOf(id) >= 0 {
			next[id] = struct{}{}
		}
	}
	s.selection = next
}

func (s *Scene) ClearSelection() { s.selection = map[string]struct{}{} }

func (s *Scene) SelectedIDs() []string {
	out := make([]string, 0, len(s.selection))
	for _, obj := range s.objects {
		if _, ok := s.selection[obj.ID]; ok {
			out = append(out, obj.ID)
		}
	}
	return out
}
