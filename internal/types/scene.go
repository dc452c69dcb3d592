package types

import "encoding/json"

type ObjectKind string

const (
	ObjectText     ObjectKind = "text"
	ObjectRect     ObjectKind = "rect"
	ObjectCircle   ObjectKind = "circle"
	ObjectTriangle ObjectKind = "triangle"
	ObjectImage    ObjectKind = "image"
)

type Origin string

const (
	OriginLeft   Origin = "left"
	OriginTop    Origin = "top"
	OriginCenter Origin = "center"
)

// SceneObject is one drawable entity on the canvas. A single struct carries
// all variants; Kind decides which type-specific fields are meaningful.
// Guides are editor-internal overlay objects: the Guide flag never
// serializes, so they can never leak into a saved or exported document.
type SceneObject struct {
	ID      string     `json:"id"`
	Kind    ObjectKind `json:"type"`
	Left    float64    `json:"left"`
	Top     float64    `json:"top"`
	OriginX Origin     `json:"originX"`
	OriginY Origin     `json:"originY"`

	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`
	Angle       float64 `json:"angle,omitempty"`
	ScaleX      float64 `json:"scaleX,omitempty"`
	ScaleY      float64 `json:"scaleY,omitempty"`

	// Text fields.
	Text       string  `json:"text,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`
	FontWeight string  `json:"fontWeight,omitempty"`
	TextAlign  string  `json:"textAlign,omitempty"`

	// Shape fields. Width/Height also size text boxes and images.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	RX     float64 `json:"rx,omitempty"`
	RY     float64 `json:"ry,omitempty"`

	// Image fields. Src is a data URL or an uploaded-asset key.
	Src string `json:"src,omitempty"`

	Guide           bool   `json:"-"`
	StrokeDashArray []int  `json:"strokeDashArray,omitempty"`
	Visible         *bool  `json:"visible,omitempty"`
	Name            string `json:"name,omitempty"`
}

// IsVisible treats a nil Visible pointer as shown, matching how loaded
// documents omit the field for ordinary objects.
func (o *SceneObject) IsVisible() bool {
	return o.Visible == nil || *o.Visible
}

// SceneDocument is the persisted and exported scene shape. The objects
// slice is paint order, back to front. This is the only scene wire format:
// project saves, template loads and JSON export/import all round-trip
// through it.
type SceneDocument struct {
	Version    string         `json:"version"`
	Background string         `json:"background,omitempty"`
	Objects    []*SceneObject `json:"objects"`
}

const SceneDocumentVersion = "1.0"

func (d *SceneDocument) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

func (d *SceneDocument) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

func ParseSceneDocument(raw []byte) (*SceneDocument, error) {
	var doc SceneDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
