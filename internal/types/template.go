package types

// DesignTemplate is a pre-authored scene document offered as a starting
// point, restricted to the products whose canvas it was drawn for.
type DesignTemplate struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	NameKey      string         `json:"name_key" yaml:"name_key"`
	Thumbnail    string         `json:"thumbnail,omitempty" yaml:"thumbnail"`
	ProductTypes []string       `json:"product_types" yaml:"product_types"`
	Canvas       *SceneDocument `json:"canvas" yaml:"canvas"`
}

// CompatibleWith reports whether the template may be offered for the given
// product. An empty ProductTypes list means the template is universal.
func (t *DesignTemplate) CompatibleWith(productID string) bool {
	if len(t.ProductTypes) == 0 {
		return true
	}
	for _, p := range t.ProductTypes {
		if p == productID {
			return true
		}
	}
	return false
}
