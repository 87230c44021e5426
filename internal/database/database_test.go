package database

import (
	"path/filepath"
	"testing"

	"github.com/Witcher21/GNS-POS/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testDB opens a throwaway database file so every test runs the real Open
// path, pragmas and migration included.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "pos_test.db"))
	require.NoError(t, err)
	return db
}

func strptr(s string) *string { return &s }

func seedProduct(t *testing.T, db *gorm.DB, p models.Product) models.Product {
	t.Helper()
	require.NoError(t, db.Create(&p).Error)
	return p
}
