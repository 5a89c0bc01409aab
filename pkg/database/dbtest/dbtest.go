// Package dbtest opens throwaway in-memory SQLite stores for tests.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Eursukkul/restaurant-booking/pkg/database"
	"gorm.io/gorm"
)

var seq atomic.Int64

// New returns a migrated in-memory store private to the calling test.
// The pool is pinned to one connection so every query sees the same database.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	db, err := database.Open(database.Options{
		Driver:       "sqlite",
		DSN:          dsn,
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
