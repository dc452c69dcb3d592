// Package storage is the project persistence adapter: one interface over
// two backends. The local store is the embedded offline database, the
// cloud store is Postgres scoped to the authenticated user. The editor
// treats both as an opaque keyed document store.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/arteva/arteva-backend/internal/types"
)

// ErrNotAuthenticated is returned by cloud operations when the calling
// context carries no user.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrNotOwner is returned by the cloud store when a save carries a project
// id that belongs to a different user.
var ErrNotOwner = errors.New("project owned by another user")

// ProjectStore persists serialized scene documents keyed by project id.
// Save is a full overwrite of the record; there is no partial patching and
// no conflict detection, so concurrent writers are last-write-wins at the
// storage layer.
type ProjectStore interface {
	Save(ctx context.Context, record *types.ProjectRecord) error
	Load(ctx context.Context, id uuid.UUID) (*types.ProjectRecord, error)
	List(ctx context.Context) ([]*types.ProjectRecord, error)
	ListByProduct(ctx context.Context, productID string) ([]*types.ProjectRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PublicLister lists community-shared projects across users. Only the
// cloud store implements it; the local store has no sharing concept.
type PublicLister interface {
	ListPublic(ctx context.Context, limit int) ([]*types.ProjectRecord, error)
}
