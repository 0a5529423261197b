package domain

import (
	"time"

	"github.com/google/uuid"
)

// Enquiry is immutable after creation: there is no update workflow.
type Enquiry struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	Email      string     `db:"email" json:"email"`
	Phone      string     `db:"phone" json:"phone"`
	Message    string     `db:"message" json:"message"`
	PackageID  *uuid.UUID `db:"package_id" json:"package_id,omitempty"`
	ScheduleID *uuid.UUID `db:"schedule_id" json:"schedule_id,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}
