package domain

import (
	"time"

	"github.com/google/uuid"
)

type Schedule struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	PackageID   uuid.UUID  `db:"package_id" json:"package_id"`
	Title       string     `db:"title" json:"title"`
	FromDate    time.Time  `db:"from_date" json:"from_date"`
	ToDate      time.Time  `db:"to_date" json:"to_date"`
	Amount      float64    `db:"amount" json:"amount"`
	Description string     `db:"description" json:"description"`
	PhotoKeys   StringList `db:"photo_keys" json:"photo_keys"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
