package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
)

func seedJob(jobs *fakeJobRepo, companyID, recruiterID uuid.UUID) *models.Job {
	return jobs.add(&models.Job{
		ID:          uuid.New(),
		Title:       "Backend Engineer",
		Description: "Build the platform",
		CompanyID:   companyID,
		RecruiterID: recruiterID,
		CreatedAt:   time.Now(),
	})
}

func seedApplication(apps *fakeApplicationRepo, companyID, candidateID uuid.UUID, status models.ApplicationStatus) *models.Application {
	return apps.add(&models.Application{
		ID:          uuid.New(),
		JobID:       uuid.New(),
		CandidateID: candidateID,
		CompanyID:   companyID,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	})
}

func TestApplicationService_Apply(t *testing.T) {
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	companyID := uuid.New()
	job := seedJob(jobs, companyID, uuid.New())
	svc := NewApplicationService(apps, jobs, testGate(t, &fakeOracle{allow: true}), testLogger())
	cand := candidateUser(nil)

	app, err := svc.Apply(context.Background(), principalFor(cand), &ApplyRequest{JobID: job.ID.String()})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if app.Status != models.StatusSubmitted {
		t.Fatalf("status = %s, want submitted", app.Status)
	}
	if app.CompanyID != companyID {
		t.Fatalf("company = %s, want the job's owner %s", app.CompanyID, companyID)
	}
	if app.CandidateID != cand.ID {
		t.Fatalf("candidate = %s, want %s", app.CandidateID, cand.ID)
	}
}

func TestApplicationService_ApplyUnknownJob(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationRepo(), newFakeJobRepo(), testGate(t, &fakeOracle{allow: true}), testLogger())

	_, err := svc.Apply(context.Background(), principalFor(candidateUser(nil)), &ApplyRequest{JobID: uuid.NewString()})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestApplicationService_ApplyTwiceConflicts(t *testing.T) {
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	job := seedJob(jobs, uuid.New(), uuid.New())
	svc := NewApplicationService(apps, jobs, testGate(t, &fakeOracle{allow: true}), testLogger())
	p := principalFor(candidateUser(nil))
	ctx := context.Background()

	if _, err := svc.Apply(ctx, p, &ApplyRequest{JobID: job.ID.String()}); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	_, err := svc.Apply(ctx, p, &ApplyRequest{JobID: job.ID.String()})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestApplicationService_ListScopedByCaller(t *testing.T) {
	apps := newFakeApplicationRepo()
	companyID := uuid.New()
	cand := candidateUser(nil)
	seedApplication(apps, companyID, cand.ID, models.StatusSubmitted)
	seedApplication(apps, companyID, uuid.New(), models.StatusSubmitted)
	seedApplication(apps, uuid.New(), uuid.New(), models.StatusSubmitted)
	svc := NewApplicationService(apps, newFakeJobRepo(), testGate(t, &fakeOracle{allow: true}), testLogger())
	ctx := context.Background()

	mine, err := svc.List(ctx, principalFor(cand))
	if err != nil {
		t.Fatalf("List as candidate: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("candidate sees %d applications, want 1", len(mine))
	}

	company := companyUser(companyID)
	companyApps, err := svc.List(ctx, principalFor(company))
	if err != nil {
		t.Fatalf("List as company: %v", err)
	}
	if len(companyApps) != 2 {
		t.Fatalf("company sees %d applications, want 2", len(companyApps))
	}
}

func TestApplicationService_StatusTransitions(t *testing.T) {
	companyID := uuid.New()
	recruiter := &models.User{ID: uuid.New(), Role: models.RoleRecruiter, CompanyID: &companyID}

	tests := []struct {
		name    string
		from    models.ApplicationStatus
		op      func(*ApplicationService, context.Context, uuid.UUID) (*models.Application, error)
		want    models.ApplicationStatus
		wantErr bool
	}{
		{
			name: "shortlist submitted",
			from: models.StatusSubmitted,
			op: func(s *ApplicationService, ctx context.Context, id uuid.UUID) (*models.Application, error) {
				return s.Shortlist(ctx, principalFor(recruiter), id)
			},
			want: models.StatusShortlisted,
		},
		{
			name: "approve submitted",
			from: models.StatusSubmitted,
			op: func(s *ApplicationService, ctx context.Context, id uuid.UUID) (*models.Application, error) {
				return s.Approve(ctx, principalFor(recruiter), id)
			},
			want: models.StatusApproved,
		},
		{
			name: "reject shortlisted",
			from: models.StatusShortlisted,
			op: func(s *ApplicationService, ctx context.Context, id uuid.UUID) (*models.Application, error) {
				return s.Reject(ctx, principalFor(recruiter), id)
			},
			want: models.StatusRejected,
		},
		{
			name: "shortlist twice",
			from: models.StatusShortlisted,
			op: func(s *ApplicationService, ctx context.Context, id uuid.UUID) (*models.Application, error) {
				return s.Shortlist(ctx, principalFor(recruiter), id)
			},
			wantErr: true,
		},
		{
			name: "approve rejected",
			from: models.StatusRejected,
			op: func(s *ApplicationService, ctx context.Context, id uuid.UUID) (*models.Application, error) {
				return s.Approve(ctx, principalFor(recruiter), id)
			},
			wantErr: true,
		},
		{
			name: "reject approved",
			from: models.StatusApproved,
			op: func(s *ApplicationService, ctx context.Context, id uuid.UUID) (*models.Application, error) {
				return s.Reject(ctx, principalFor(recruiter), id)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apps := newFakeApplicationRepo()
			app := seedApplication(apps, companyID, uuid.New(), tt.from)
			svc := NewApplicationService(apps, newFakeJobRepo(), testGate(t, &fakeOracle{allow: true}), testLogger())

			got, err := tt.op(svc, context.Background(), app.ID)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrConflict) {
					t.Fatalf("err = %v, want conflict", err)
				}
				stored, _ := apps.GetByID(context.Background(), app.ID)
				if stored.Status != tt.from {
					t.Fatalf("status mutated to %s on rejected transition", stored.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("transition: %v", err)
			}
			if got.Status != tt.want {
				t.Fatalf("status = %s, want %s", got.Status, tt.want)
			}
		})
	}
}

func TestApplicationService_TransitionWrongCompanyForbidden(t *testing.T) {
	apps := newFakeApplicationRepo()
	app := seedApplication(apps, uuid.New(), uuid.New(), models.StatusSubmitted)
	otherCompany := uuid.New()
	recruiter := &models.User{ID: uuid.New(), Role: models.RoleRecruiter, CompanyID: &otherCompany}
	svc := NewApplicationService(apps, newFakeJobRepo(), testGate(t, &fakeOracle{allow: true}), testLogger())

	_, err := svc.Shortlist(context.Background(), principalFor(recruiter), app.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want forbidden", err)
	}
	stored, _ := apps.GetByID(context.Background(), app.ID)
	if stored.Status != models.StatusSubmitted {
		t.Fatalf("status mutated to %s on denied transition", stored.Status)
	}
}

func TestApplicationService_TransitionOracleOutage(t *testing.T) {
	apps := newFakeApplicationRepo()
	companyID := uuid.New()
	app := seedApplication(apps, companyID, uuid.New(), models.StatusSubmitted)
	recruiter := &models.User{ID: uuid.New(), Role: models.RoleRecruiter, CompanyID: &companyID}
	svc := NewApplicationService(apps, newFakeJobRepo(), testGate(t, &fakeOracle{err: errors.New("pdp down")}), testLogger())

	_, err := svc.Approve(context.Background(), principalFor(recruiter), app.ID)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}
