package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a credential record. Password is stored and compared verbatim;
// the store's only durability guarantee is that a write survives restart.
type User struct {
	Id        uuid.UUID
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
