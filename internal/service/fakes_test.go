package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/google/uuid"

	"github.com/Sarah-okolo/Hireflow-server/internal/authz"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain"
	"github.com/Sarah-okolo/Hireflow-server/internal/domain/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeOracle implements authz.PolicyOracle for service tests.
type fakeOracle struct {
	allow bool
	err   error
	calls int
}

func (o *fakeOracle) Check(_ context.Context, _ string, _ authz.ResourceType, _ authz.Action) (bool, error) {
	o.calls++
	return o.allow, o.err
}

// testGate builds a real gate over the embedded registry and the given
// oracle, so service tests exercise the production decision path.
func testGate(t *testing.T, oracle authz.PolicyOracle) *authz.Gate {
	t.Helper()
	registry, err := authz.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return authz.NewGate(oracle, registry, testLogger())
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) add(u *models.User) *models.User {
	cp := *u
	r.users[cp.ID] = &cp
	return &cp
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if user.Username != "" && u.Username == user.Username {
			return &domain.ConflictError{
				Message:      "username already exists",
				ResourceType: "user",
				ResourceID:   u.ID.String(),
			}
		}
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID, role models.Role) (*models.User, error) {
	u, ok := r.users[id]
	if !ok || (role != "" && u.Role != role) {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetCompanyByCompanyID(_ context.Context, companyID uuid.UUID) (*models.User, error) {
	for _, u := range r.users {
		if u.Role == models.RoleCompany && u.CompanyID != nil && *u.CompanyID == companyID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) UpdateCandidateProfile(_ context.Context, id uuid.UUID, firstName, lastName, email string, skills []string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok || u.Role != models.RoleCandidate {
		return nil, domain.ErrNotFound
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.Email = email
	u.Skills = skills
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID, role models.Role) error {
	u, ok := r.users[id]
	if !ok || u.Role != role {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// fakeJobRepo is an in-memory JobRepository.
type fakeJobRepo struct {
	jobs map[uuid.UUID]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*models.Job)}
}

func (r *fakeJobRepo) add(j *models.Job) *models.Job {
	cp := *j
	r.jobs[cp.ID] = &cp
	return &cp
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	r.add(job)
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) List(_ context.Context) ([]models.Job, error) {
	out := make([]models.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	sortJobs(out)
	return out, nil
}

func (r *fakeJobRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, *j)
		}
	}
	sortJobs(out)
	return out, nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.jobs, id)
	return nil
}

func sortJobs(jobs []models.Job) {
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].CreatedAt.After(jobs[k].CreatedAt) })
}

// fakeApplicationRepo is an in-memory ApplicationRepository.
type fakeApplicationRepo struct {
	apps map[uuid.UUID]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[uuid.UUID]*models.Application)}
}

func (r *fakeApplicationRepo) add(a *models.Application) *models.Application {
	cp := *a
	r.apps[cp.ID] = &cp
	return &cp
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *models.Application) error {
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.CandidateID == app.CandidateID {
			return &domain.ConflictError{
				Message:      "application already exists for this job",
				ResourceType: "application",
				ResourceID:   a.ID.String(),
			}
		}
	}
	r.add(app)
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApplicationRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.apps {
		if a.CompanyID == companyID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.apps {
		if a.CandidateID == candidateID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.Status = status
	cp := *a
	return &cp, nil
}

func companyUser(companyID uuid.UUID) *models.User {
	return &models.User{
		ID:          uuid.New(),
		Username:    "acme-" + companyID.String()[:8],
		Role:        models.RoleCompany,
		CompanyID:   &companyID,
		CompanyName: "Acme",
	}
}

func candidateUser(companyID *uuid.UUID) *models.User {
	return &models.User{
		ID:        uuid.New(),
		Role:      models.RoleCandidate,
		CompanyID: companyID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
}

func principalFor(u *models.User) *authz.Principal {
	return &authz.Principal{ID: u.ID, Role: u.Role, CompanyID: u.CompanyID}
}
