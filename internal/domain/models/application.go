package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the state of a candidate's application to a job.
//
// Transitions: submitted -> shortlisted | rejected | approved, and
// shortlisted -> rejected | approved. Rejected and approved are terminal.
type ApplicationStatus string

const (
	StatusSubmitted   ApplicationStatus = "submitted"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusApproved    ApplicationStatus = "approved"
)

// CanTransitionTo reports whether s may move to next.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	switch s {
	case StatusSubmitted:
		return next == StatusShortlisted || next == StatusRejected || next == StatusApproved
	case StatusShortlisted:
		return next == StatusRejected || next == StatusApproved
	}
	return false
}

// Application records a candidate applying to a job. CompanyID is denormalized
// from the job at apply time so ownership checks need a single load.
type Application struct {
	ID          uuid.UUID         `json:"id"`
	JobID       uuid.UUID         `json:"jobId"`
	CandidateID uuid.UUID         `json:"candidateId"`
	CompanyID   uuid.UUID         `json:"companyId"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
