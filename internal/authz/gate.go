package authz

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
)

// Gate is the request-scoped authorization gate. Every decision delegates to
// the remote policy oracle and then layers the local ownership invariants the
// oracle cannot express. Ownership can only narrow an oracle allow, never
// widen it.
//
// The gate holds no state between calls and never caches decisions.
type Gate struct {
	oracle   PolicyOracle
	registry *Registry
	logger   *slog.Logger
}

// NewGate creates an authorization gate backed by the given oracle.
func NewGate(oracle PolicyOracle, registry *Registry, logger *slog.Logger) *Gate {
	return &Gate{
		oracle:   oracle,
		registry: registry,
		logger:   logger,
	}
}

// Authorize decides an instance-scoped action. The ref must be built from
// freshly loaded store state; callers pass nil when the target was not found,
// which yields a not-found decision so handlers can answer 404 instead of
// leaking a 403.
//
// On any oracle failure the decision is a deny with reason
// oracle-unreachable. The gate never fails open.
func (g *Gate) Authorize(ctx context.Context, principal *Principal, action Action, resource ResourceType, ref *ResourceRef) Decision {
	if ref == nil && action != ActionCreate {
		return denied(ReasonNotFound)
	}
	return g.decide(ctx, principal, action, resource, ref)
}

// AuthorizeCollection decides an action with no single target instance
// (creates and collection reads). Ownership scoping for collections happens
// in the store query itself, keyed by the verified principal.
func (g *Gate) AuthorizeCollection(ctx context.Context, principal *Principal, action Action, resource ResourceType) Decision {
	return g.decide(ctx, principal, action, resource, nil)
}

func (g *Gate) decide(ctx context.Context, principal *Principal, action Action, resource ResourceType, ref *ResourceRef) Decision {
	if !g.registry.Knows(resource, action) {
		g.logger.Warn("authorization requested for unregistered pair",
			"resource", resource,
			"action", action,
		)
		return denied(ReasonOracleDenied)
	}

	allow, err := g.oracle.Check(ctx, principal.ID.String(), resource, action)
	if err != nil {
		g.logger.Error("policy oracle unreachable, failing closed",
			"resource", resource,
			"action", action,
			"user_id", principal.ID,
			"error", err,
		)
		return denied(ReasonOracleUnreachable)
	}
	if !allow {
		return denied(ReasonOracleDenied)
	}

	if ref != nil && !ownershipSatisfied(principal, ref) {
		g.logger.Info("ownership check denied oracle-allowed action",
			"resource", resource,
			"action", action,
			"resource_id", ref.ID,
			"user_id", principal.ID,
		)
		return denied(ReasonOwnershipMismatch)
	}

	return allowed
}

// ownershipSatisfied applies the per-(role, resource) ownership invariants.
// Pairs without a rule pass through: the oracle alone governs them.
func ownershipSatisfied(p *Principal, ref *ResourceRef) bool {
	switch p.Role {
	case models.RoleCandidate:
		// Candidates touch only their own candidate record.
		if ref.Type == ResourceCandidates {
			return sameID(ref.OwnerPrincipalID, p.ID)
		}

	case models.RoleRecruiter:
		switch ref.Type {
		case ResourceCandidates, ResourceJobs, ResourceApplications:
			return sameCompany(ref.OwnerCompanyID, p.CompanyID)
		case ResourceRecruiters:
			// A recruiter sees only their own recruiter record.
			return sameID(ref.OwnerPrincipalID, p.ID)
		}

	case models.RoleCompany:
		switch ref.Type {
		case ResourceCompanies:
			return sameID(ref.OwnerPrincipalID, p.ID)
		case ResourceCandidates, ResourceRecruiters, ResourceJobs, ResourceApplications:
			return sameCompany(ref.OwnerCompanyID, p.CompanyID)
		}
	}
	return true
}

func sameID(owner *uuid.UUID, id uuid.UUID) bool {
	return owner != nil && *owner == id
}

func sameCompany(owner, mine *uuid.UUID) bool {
	return owner != nil && mine != nil && *owner == *mine
}
