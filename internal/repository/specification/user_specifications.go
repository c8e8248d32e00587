package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByUsername filters by the exact username. Matching is case-sensitive on
// purpose: credentials are compared verbatim.
type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

// ByID filters by primary key.
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}
