// Package testdb поднимает изолированную SQLite-базу с боевыми миграциями для тестов.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/org-lifecycle-api/internal/config"
	"github.com/org-lifecycle-api/internal/persistence"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New возвращает мигрированную БД во временном каталоге теста
func New(tb testing.TB) *gorm.DB {
	tb.Helper()

	cfg := config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      filepath.Join(tb.TempDir(), "test.db"),
		ConnectAttempts: 1,
	}

	db, err := persistence.Open(cfg)
	if err != nil {
		tb.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("get sql.DB: %v", err)
	}
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := persistence.Migrate(db, cfg.Driver, zap.NewNop()); err != nil {
		tb.Fatalf("migrate test database: %v", err)
	}

	return db
}
