package authz

import (
	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
)

// Principal is the authenticated caller of a request, reconstructed from
// verified credential claims only. It is derived fresh per request and never
// persisted.
type Principal struct {
	ID        uuid.UUID
	Role      models.Role
	CompanyID *uuid.UUID
}

// Action is an operation a principal requests on a resource type.
type Action string

const (
	ActionCreate    Action = "create"
	ActionRead      Action = "read"
	ActionUpdate    Action = "update"
	ActionDelete    Action = "delete"
	ActionShortlist Action = "shortlist"
	ActionReject    Action = "reject"
	ActionApprove   Action = "approve"
)

// ResourceType names a gated resource kind. The string values are the
// resource keys configured in the policy decision point.
type ResourceType string

const (
	ResourceCandidates   ResourceType = "candidates"
	ResourceRecruiters   ResourceType = "recruiters"
	ResourceCompanies    ResourceType = "companies"
	ResourceJobs         ResourceType = "jobs"
	ResourceApplications ResourceType = "applications"
)

// ResourceRef identifies a concrete resource instance for ownership checks.
// It must be built from freshly loaded store state, never from client input.
type ResourceRef struct {
	Type             ResourceType
	ID               uuid.UUID
	OwnerCompanyID   *uuid.UUID
	OwnerPrincipalID *uuid.UUID
}

// Reason explains a deny decision.
type Reason string

const (
	ReasonAllowed           Reason = ""
	ReasonOracleDenied      Reason = "oracle-denied"
	ReasonOwnershipMismatch Reason = "ownership-mismatch"
	ReasonNotFound          Reason = "not-found"
	ReasonOracleUnreachable Reason = "oracle-unreachable"
)

// Decision is the outcome of one authorization check. Produced once per
// request and never cached: ownership data can change between requests and a
// stale allow is a security risk.
type Decision struct {
	Allow  bool
	Reason Reason
}

var allowed = Decision{Allow: true}

func denied(reason Reason) Decision {
	return Decision{Allow: false, Reason: reason}
}
