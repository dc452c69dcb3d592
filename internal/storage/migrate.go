package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/types"
)

type MigrationStatus string

const (
	StatusMigrated MigrationStatus = "migrated"
	StatusSkipped  MigrationStatus = "skipped"
	StatusError    MigrationStatus = "error"
)

type MigrationDetail struct {
	ProjectName string          `json:"project_name"`
	Status      MigrationStatus `json:"status"`
	Message     string          `json:"message,omitempty"`
}

type MigrationResult struct {
	Success  bool              `json:"success"`
	Migrated int               `json:"migrated"`
	Skipped  int               `json:"skipped"`
	Errors   int               `json:"errors"`
	Details  []MigrationDetail `json:"details"`
}

// Migrator copies offline projects into the cloud store, one way. It is
// safe to re-run: anything already present in the cloud is skipped, so the
// dismissible banner that triggers it can fire as often as it likes.
type Migrator struct {
	local ProjectStore
	cloud ProjectStore
	log   *logger.Logger
}

func NewMigrator(local, cloud ProjectStore, log *logger.Logger) *Migrator {
	return &Migrator{local: local, cloud: cloud, log: log.With("service", "Migrator")}
}

// Migrate copies every local project absent from the cloud store. An
// unauthenticated caller fails fast; a failing item does not abort the
// batch. With deleteAfter set, each local copy is removed only once its
// cloud insert has succeeded.
func (m *Migrator) Migrate(ctx context.Context, deleteAfter bool) (*MigrationResult, error) {
	result := &MigrationResult{Details: []MigrationDetail{}}

	existing, err := m.cloud.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cloud projects: %w", err)
	}
	existingIDs := make(map[uuid.UUID]bool, len(existing))
	for _, p := range existing {
		existingIDs[p.ID] = true
	}

	locals, err := m.local.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local projects: %w", err)
	}
	if len(locals) == 0 {
		result.Success = true
		return result, nil
	}
	m.log.Info("Migrating local projects", "count", len(locals))

	for _, project := range locals {
		if existingIDs[project.ID] {
			result.Skipped++
			result.Details = append(result.Details, MigrationDetail{
				ProjectName: project.Name,
				Status:      StatusSkipped,
				Message:     "already exists in cloud store",
			})
			continue
		}

		if err := m.cloud.Save(ctx, project); err != nil {
			m.log.Warn("Project migration failed", "project", project.ID, "error", err)
			result.Errors++
			result.Details = append(result.Details, MigrationDetail{
				ProjectName: project.Name,
				Status:      StatusError,
				Message:     err.Error(),
			})
			continue
		}

		result.Migrated++
		result.Details = append(result.Details, MigrationDetail{
			ProjectName: project.Name,
			Status:      StatusMigrated,
		})

		if deleteAfter {
			if err := m.local.Delete(ctx, project.ID); err != nil {
				m.log.Warn("Could not delete migrated local copy", "project", project.ID, "error", err)
			}
		}
	}

	result.Success = result.Errors == 0
	m.log.Info("Migration finished", "migrated", result.Migrated, "skipped", result.Skipped, "errors", result.Errors)
	return result, nil
}

// PendingCount reports how many local projects are not yet in the cloud
// store. Both listings run concurrently.
func (m *Migrator) PendingCount(ctx context.Context) (int, error) {
	var localRecords, cloudRecords []*types.ProjectRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rs, err := m.local.List(gctx)
		localRecords = rs
		return err
	})
	g.Go(func() error {
		rs, err := m.cloud.List(gctx)
		cloudRecords = rs
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}
	cloudIDs := make(map[uuid.UUID]bool, len(cloudRecords))
	for _, p := range cloudRecords {
		cloudIDs[p.ID] = true
	}
	pending := 0
	for _, p := range localRecords {
		if !cloudIDs[p.ID] {
			pending++
		}
	}
	return pending, nil
}

// HasPending is the cheap banner check.
func (m *Migrator) HasPending(ctx context.Context) (bool, error) {
	n, err := m.PendingCount(ctx)
	return n > 0, err
}
