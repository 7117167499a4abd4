package testutils

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model"
)

// SetupTestDB creates an isolated in-memory SQLite database for a test.
// Each call opens a uniquely named shared-cache database so tests never
// see each other's data. All tables are migrated before returning.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named in-memory database: shared cache keeps it alive across the
	// pool's connections, the unique name isolates parallel tests.
	dsn := fmt.Sprintf("file:test_%s?mode=memory&cache=shared&_foreign_keys=on", uuid.New().String())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Suppress logs in tests
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get test database connection: %v", err)
	}
	// Single connection avoids SQLITE_BUSY between concurrent statements
	sqlDB.SetMaxOpenConns(1)

	// Initialize all tables
	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}
