package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sarah-okolo/Hireflow-server/internal/auth"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/repositories"
)

// AuthService handles signup and login. Passwords are hashed with bcrypt;
// tokens are issued by the resolver so the embedded identity claims always
// match the stored record.
type AuthService struct {
	users    repositories.UserRepository
	resolver auth.Resolver
	logger   *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository, resolver auth.Resolver, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		resolver: resolver,
		logger:   logger,
	}
}

// SignupRequest is the signup payload. CompanyID is required for recruiters,
// CompanyName for companies.
type SignupRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup registers a new account and returns a signed token plus the stored
// user. A company signup mints a fresh company identifier; a recruiter
// signup must reference an existing company.
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (string, *models.User, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In("candidate", "recruiter", "company")),
	); err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	role := models.Role(req.Role)

	user := &models.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch role {
	case models.RoleCompany:
		if req.CompanyName == "" {
			return "", nil, fmt.Errorf("%w: company name is required for company accounts", domain.ErrValidation)
		}
		companyID := uuid.New()
		user.CompanyID = &companyID
		user.CompanyName = req.CompanyName

	case models.RoleRecruiter:
		if req.CompanyID == "" {
			return "", nil, fmt.Errorf("%w: company ID is required for recruiter accounts", domain.ErrValidation)
		}
		companyID, err := uuid.Parse(req.CompanyID)
		if err != nil {
			return "", nil, fmt.Errorf("%w: invalid company ID format", domain.ErrValidation)
		}
		// The company must exist before recruiters can join it. Verified
		// against the store, not taken on faith from the payload.
		if _, err := s.users.GetCompanyByCompanyID(ctx, companyID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return "", nil, fmt.Errorf("%w: company ID not found", domain.ErrValidation)
			}
			return "", nil, err
		}
		user.CompanyID = &companyID
	}

	// Pre-check keeps the common duplicate case a clean 400; the unique
	// index closes the remaining race.
	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return "", nil, fmt.Errorf("%w: username already exists", domain.ErrValidation)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.resolver.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user signed up", "user_id", user.ID, "role", user.Role)
	return token, user, nil
}

// Login verifies credentials and returns a signed token plus the user.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (string, *models.User, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	); err != nil {
		return "", nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
	}

	token, err := s.resolver.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return token, user, nil
}
