package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project is the cloud-synchronized row, scoped to its owning user.
type Project struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string         `gorm:"column:name;not null" json:"name"`
	ProductID  string         `gorm:"column:product_id;not null;index" json:"product_id"`
	Canvas     datatypes.JSON `gorm:"column:canvas;type:jsonb" json:"canvas"`
	PreviewURL string         `gorm:"column:preview_url" json:"preview_url"`
	IsPublic   bool           `gorm:"column:is_public;not null;default:false" json:"is_public"`
	Tags       datatypes.JSON `gorm:"column:tags;type:jsonb" json:"tags"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;index" json:"updated_at"`
}

func (Project) TableName() string {
	return "project"
}

// LocalProject is the offline row kept in the embedded sqlite store. It has
// no user scoping; the local store belongs to whoever owns the device.
type LocalProject struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string         `gorm:"column:name;not null" json:"name"`
	ProductID      string         `gorm:"column:product_id;not null;index" json:"product_id"`
	Canvas         datatypes.JSON `gorm:"column:canvas" json:"canvas"`
	PreviewDataURL string         `gorm:"column:preview_data_url" json:"preview_data_url"`
	UpdatedAt      time.Time      `gorm:"not null;index" json:"updated_at"`
}

func (LocalProject) TableName() string {
	return "local_project"
}

// ProjectRecord is the backend-neutral view the persistence adapter works
// in. Scene is the serialized SceneDocument, opaque at this layer.
type ProjectRecord struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	ProductID string          `json:"product_id"`
	Scene     json.RawMessage `json:"scene"`
	Preview   string          `json:"preview,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}
