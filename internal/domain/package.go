package domain

import (
	"time"

	"github.com/google/uuid"
)

// Package references its photos by storage key only. Retrieval URLs are
// derived by presigning on read and are never persisted.
type Package struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	Description   string     `db:"description" json:"description"`
	Terms         StringList `db:"terms" json:"terms"`
	SourceCountry uuid.UUID  `db:"source_country_id" json:"source_country_id"`
	SourceCity    uuid.UUID  `db:"source_city_id" json:"source_city_id"`
	DestCountry   uuid.UUID  `db:"dest_country_id" json:"dest_country_id"`
	DestCity      uuid.UUID  `db:"dest_city_id" json:"dest_city_id"`
	PhotoKeys     StringList `db:"photo_keys" json:"photo_keys"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
