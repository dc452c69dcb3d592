package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/types"
	"github.com/arteva/arteva-backend/internal/utils"
)

// SqliteService owns the embedded offline store, the server-side stand-in
// for the browser's local project database. Projects saved here have no
// user scoping and can later be migrated into Postgres.
type SqliteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSqliteService(log *logger.Logger) (*SqliteService, error) {
	serviceLog := log.With("service", "SqliteService")

	path := utils.GetEnv("SQLITE_PATH", "arteva-projects.db", log)

	serviceLog.Info("Opening sqlite store...", "path", path)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		serviceLog.Error("Failed to open sqlite store", "error", err)
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}

	return &SqliteService{db: db, log: serviceLog}, nil
}

func (s *SqliteService) AutoMigrateAll() error {
	s.log.Info("Auto migrating sqlite tables...")
	if err := s.db.AutoMigrate(&types.LocalProject{}); err != nil {
		s.log.Error("Auto migration failed for sqlite tables", "error", err)
		return err
	}
	return nil
}

func (s *SqliteService) DB() *gorm.DB {
	return s.db
}
