// Package testdb opens throwaway in-memory databases for tests.
package testdb

import (
	"cinema_api/database"
	"cinema_api/helper"
	"cinema_api/model"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a migrated in-memory database that is closed when the test
// ends. A single connection is used so every query sees the same database.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Auditorium creates an auditorium with capacity seats, 10 per row.
func Auditorium(t testing.TB, db *gorm.DB, capacity int) *model.Auditorium {
	t.Helper()
	a, err := helper.CreateAuditorium(db, model.CreateAuditoriumInput{Capacity: capacity, SeatsPerRow: 10})
	if err != nil {
		t.Fatalf("create auditorium: %v", err)
	}
	return a
}

func Customer(t testing.TB, db *gorm.DB, name, email string) *model.Customer {
	t.Helper()
	c := &model.Customer{Name: name, Email: email}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return c
}
