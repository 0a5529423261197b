package domain

import (
	"time"

	"github.com/google/uuid"
)

type Banner struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	PhotoKey  string    `db:"photo_key" json:"photo_key"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
