package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseNoDelete carries the keys of rows that are hard-deleted and may be edited
type BaseNoDelete struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// User is keyed by its canonical phone
type User struct {
	BaseNoDelete
	Username string `db:"username"`
	Phone    string `db:"phone"`
	IsAdmin  bool   `db:"is_admin"`
}
