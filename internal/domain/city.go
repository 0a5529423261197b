package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type City struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CountryID uuid.UUID `db:"country_id" json:"country_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NormalizeCityName is applied before every duplicate check and before
// storage, so " Paris " and "paris" refer to the same city.
func NormalizeCityName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
