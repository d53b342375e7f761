package models

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting in the jobs table, keyed by the owning company and the
// recruiter who created it.
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	CompanyID   uuid.UUID `json:"companyId"`
	RecruiterID uuid.UUID `json:"recruiterId"`
	CreatedAt   time.Time `json:"createdAt"`
}
