package auth

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestResolver(t *testing.T, secret string) *HMACResolver {
	t.Helper()
	r, err := NewHMACResolver(secret, testLogger())
	if err != nil {
		t.Fatalf("NewHMACResolver: %v", err)
	}
	return r
}

func TestResolver_RoundTrip(t *testing.T) {
	r := newTestResolver(t, "test-secret")

	companyID := uuid.New()
	user := &models.User{
		ID:        uuid.New(),
		Username:  "r1",
		Role:      models.RoleRecruiter,
		CompanyID: &companyID,
	}

	token, err := r.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	principal, err := r.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if principal.ID != user.ID {
		t.Errorf("principal id = %s, want %s", principal.ID, user.ID)
	}
	if principal.Role != models.RoleRecruiter {
		t.Errorf("principal role = %s, want recruiter", principal.Role)
	}
	if principal.CompanyID == nil || *principal.CompanyID != companyID {
		t.Errorf("principal company = %v, want %s", principal.CompanyID, companyID)
	}
}

func TestResolver_RoundTripWithoutCompany(t *testing.T) {
	r := newTestResolver(t, "test-secret")

	user := &models.User{ID: uuid.New(), Username: "c1", Role: models.RoleCandidate}
	token, err := r.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	principal, err := r.Resolve(token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if principal.CompanyID != nil {
		t.Errorf("principal company = %v, want nil", principal.CompanyID)
	}
}

func TestResolver_RejectsBadCredentials(t *testing.T) {
	r := newTestResolver(t, "test-secret")
	other := newTestResolver(t, "other-secret")

	user := &models.User{ID: uuid.New(), Role: models.RoleCandidate}
	wrongKey, err := other.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name       string
		credential string
	}{
		{"empty", ""},
		{"malformed", "not-a-token"},
		{"garbage segments", "aaa.bbb.ccc"},
		{"wrong key", wrongKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Resolve(tt.credential); !errors.Is(err, domain.ErrUnauthenticated) {
				t.Fatalf("Resolve(%q) err = %v, want ErrUnauthenticated", tt.credential, err)
			}
		})
	}
}

func TestResolver_RejectsExpiredToken(t *testing.T) {
	r := newTestResolver(t, "test-secret")
	r.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	user := &models.User{ID: uuid.New(), Role: models.RoleCandidate}
	token, err := r.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Verify with the real clock: the token expired an hour ago.
	r.now = time.Now
	if _, err := r.Resolve(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("Resolve err = %v, want ErrUnauthenticated", err)
	}
}

func TestResolver_RejectsWrongAlgorithm(t *testing.T) {
	r := newTestResolver(t, "test-secret")

	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: "candidate",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := r.Resolve(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("Resolve err = %v, want ErrUnauthenticated", err)
	}
}

func TestResolver_RejectsUnknownRole(t *testing.T) {
	r := newTestResolver(t, "test-secret")

	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: "superadmin",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := r.Resolve(token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("Resolve err = %v, want ErrUnauthenticated", err)
	}
}
