package models

import (
	"time"

	"github.com/google/uuid"
)

// Role discriminates the principal kinds stored in the users table.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleCompany   Role = "company"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleCompany:
		return true
	}
	return false
}

// User is a record in the users table. All principal kinds share the table,
// discriminated by Role; the per-role fields are optional.
//
// CompanyID is the company affiliation: for a company account it is the
// minted company identifier, for recruiters and company-created candidates
// it references the owning company.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username,omitempty"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	CompanyID    *uuid.UUID `json:"companyId,omitempty"`
	CompanyName  string     `json:"companyName,omitempty"`
	FirstName    string     `json:"firstName,omitempty"`
	LastName     string     `json:"lastName,omitempty"`
	Email        string     `json:"email,omitempty"`
	Skills       []string   `json:"skills,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
