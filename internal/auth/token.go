package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/authz"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
)

// tokenTTL matches the original platform contract of one-hour access tokens.
const tokenTTL = time.Hour

// Resolver issues and verifies access tokens against a process-wide shared
// signing secret. Verification is pure: the principal is reconstructed only
// from verified claims, with no store access.
type Resolver interface {
	// Issue signs a token for the given user.
	Issue(user *models.User) (string, error)

	// Resolve verifies a raw bearer credential and returns the principal it
	// identifies. Fails with domain.ErrUnauthenticated when the credential
	// is absent, malformed, expired, or signed with the wrong key or
	// algorithm.
	Resolve(credential string) (*authz.Principal, error)
}

// HMACResolver implements Resolver with HS256 and a shared secret loaded
// once at startup.
type HMACResolver struct {
	secret []byte
	logger *slog.Logger
	now    func() time.Time
}

// NewHMACResolver creates a resolver for the given signing secret.
func NewHMACResolver(secret string, logger *slog.Logger) (*HMACResolver, error) {
	if secret == "" {
		return nil, errors.New("signing secret cannot be empty")
	}
	return &HMACResolver{
		secret: []byte(secret),
		logger: logger,
		now:    time.Now,
	}, nil
}

// Issue signs an access token carrying the user's id, role, and company
// affiliation.
func (r *HMACResolver) Issue(user *models.User) (string, error) {
	now := r.now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Role: string(user.Role),
	}
	if user.CompanyID != nil {
		claims.CompanyID = user.CompanyID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(r.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Resolve verifies the credential and rebuilds the principal from its claims.
func (r *HMACResolver) Resolve(credential string) (*authz.Principal, error) {
	if credential == "" {
		return nil, domain.ErrUnauthenticated
	}

	token, err := jwt.ParseWithClaims(credential, &AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Prevent algorithm confusion attacks - only HS256 is issued here
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing algorithm %q", t.Method.Alg())
		}
		return r.secret, nil
	}, jwt.WithTimeFunc(r.now))
	if err != nil {
		r.logger.Debug("token verification failed", "error", err)
		return nil, domain.ErrUnauthenticated
	}
	if !token.Valid {
		return nil, domain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		r.logger.Debug("token subject is not a valid id", "subject", claims.Subject)
		return nil, domain.ErrUnauthenticated
	}

	role := models.Role(claims.Role)
	if !role.Valid() {
		r.logger.Debug("token carries unknown role", "role", claims.Role)
		return nil, domain.ErrUnauthenticated
	}

	principal := &authz.Principal{
		ID:   subject,
		Role: role,
	}
	if claims.CompanyID != "" {
		companyID, err := uuid.Parse(claims.CompanyID)
		if err != nil {
			return nil, domain.ErrUnauthenticated
		}
		principal.CompanyID = &companyID
	}

	return principal, nil
}
