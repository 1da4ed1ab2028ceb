// Package store implements the domain operations against the relational
// database. Every check-then-write sequence (uniqueness checks, delete
// guards, stock decrements) runs inside a single transaction so concurrent
// requests cannot interleave between the check and the write.
package store

import (
	"math"

	"github.com/BrianEstime1/hvac-backend/models"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

// New wraps an already-connected database session.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the schema for every entity.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Invoice{},
		&models.Appointment{},
		&models.InventoryItem{},
		&models.InventoryUsage{},
		&models.Quote{},
		&models.JobPhoto{},
		&models.ReminderLog{},
	)
}

// DB exposes the underlying session for collaborators that run their own
// queries, such as the reminder service.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
