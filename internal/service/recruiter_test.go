package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
)

func seedRecruiter(users *fakeUserRepo, companyID uuid.UUID) *models.User {
	return users.add(&models.User{
		ID:        uuid.New(),
		Username:  "rex-" + uuid.NewString()[:8],
		Role:      models.RoleRecruiter,
		CompanyID: &companyID,
	})
}

func TestRecruiterService_CreateUnderOwnCompany(t *testing.T) {
	users := newFakeUserRepo()
	companyID := uuid.New()
	company := users.add(companyUser(companyID))
	svc := NewRecruiterService(users, testGate(t, &fakeOracle{allow: true}), testLogger())

	recruiter, err := svc.Create(context.Background(), principalFor(company), &CreateRecruiterRequest{
		Username:  "rex",
		Password:  "hunter2",
		CompanyID: companyID.String(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if recruiter.Role != models.RoleRecruiter {
		t.Fatalf("role = %s", recruiter.Role)
	}
	if recruiter.CompanyID == nil || *recruiter.CompanyID != companyID {
		t.Fatalf("company = %v, want %s", recruiter.CompanyID, companyID)
	}
	if recruiter.PasswordHash == "hunter2" || recruiter.PasswordHash == "" {
		t.Fatal("password stored without hashing")
	}
}

func TestRecruiterService_CreateForOtherCompanyForbidden(t *testing.T) {
	users := newFakeUserRepo()
	mine := uuid.New()
	other := uuid.New()
	users.add(companyUser(other))
	caller := users.add(companyUser(mine))
	svc := NewRecruiterService(users, testGate(t, &fakeOracle{allow: true}), testLogger())

	_, err := svc.Create(context.Background(), principalFor(caller), &CreateRecruiterRequest{
		Username:  "rex",
		Password:  "hunter2",
		CompanyID: other.String(),
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want forbidden", err)
	}
}

func TestRecruiterService_CreateDuplicateUsername(t *testing.T) {
	users := newFakeUserRepo()
	companyID := uuid.New()
	company := users.add(companyUser(companyID))
	users.add(&models.User{ID: uuid.New(), Username: "rex", Role: models.RoleRecruiter, CompanyID: &companyID})
	svc := NewRecruiterService(users, testGate(t, &fakeOracle{allow: true}), testLogger())

	_, err := svc.Create(context.Background(), principalFor(company), &CreateRecruiterRequest{
		Username:  "rex",
		Password:  "hunter2",
		CompanyID: companyID.String(),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestRecruiterService_GetOwnProfileOnly(t *testing.T) {
	users := newFakeUserRepo()
	companyID := uuid.New()
	rex := seedRecruiter(users, companyID)
	colleague := seedRecruiter(users, companyID)
	svc := NewRecruiterService(users, testGate(t, &fakeOracle{allow: true}), testLogger())
	ctx := context.Background()

	got, err := svc.Get(ctx, principalFor(rex), rex.ID)
	if err != nil {
		t.Fatalf("Get own: %v", err)
	}
	if got.ID != rex.ID {
		t.Fatalf("got %s, want %s", got.ID, rex.ID)
	}

	// Same company is not enough for recruiter records.
	if _, err := svc.Get(ctx, principalFor(rex), colleague.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want forbidden", err)
	}
}

func TestRecruiterService_DeleteByOwningCompany(t *testing.T) {
	users := newFakeUserRepo()
	companyID := uuid.New()
	company := users.add(companyUser(companyID))
	rex := seedRecruiter(users, companyID)
	svc := NewRecruiterService(users, testGate(t, &fakeOracle{allow: true}), testLogger())

	if err := svc.Delete(context.Background(), principalFor(company), rex.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := users.users[rex.ID]; ok {
		t.Fatal("recruiter still present after delete")
	}
}

func TestRecruiterService_DeleteByOtherCompanyKeepsRecord(t *testing.T) {
	users := newFakeUserRepo()
	rex := seedRecruiter(users, uuid.New())
	caller := users.add(companyUser(uuid.New()))
	svc := NewRecruiterService(users, testGate(t, &fakeOracle{allow: true}), testLogger())

	err := svc.Delete(context.Background(), principalFor(caller), rex.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want forbidden", err)
	}
	if _, ok := users.users[rex.ID]; !ok {
		t.Fatal("denied delete must leave the record in place")
	}
}
