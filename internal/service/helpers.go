package service

import (
	"fmt"

	"github.com/Sarah-okolo/Hireflow-server/internal/authz"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
)

// decisionError maps a gate decision to the domain error taxonomy. Not-found
// stays distinct from forbidden so handlers answer 404 for absent targets
// instead of leaking a 403.
func decisionError(d authz.Decision) error {
	if d.Allow {
		return nil
	}
	switch d.Reason {
	case authz.ReasonNotFound:
		return domain.ErrNotFound
	case authz.ReasonOracleUnreachable:
		return fmt.Errorf("authorization check unavailable: %w", domain.ErrUnavailable)
	default:
		// oracle-denied and ownership-mismatch are both a plain 403; the
		// distinction is logged by the gate, not surfaced to callers.
		return domain.ErrForbidden
	}
}
