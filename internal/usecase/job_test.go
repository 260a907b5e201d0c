package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/saranyu/jobboard-api/internal/model"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/queue"
	"github.com/saranyu/jobboard-api/internal/repository"
)

func newJobFixture(t *testing.T) (*fakeJobRepo, *fakeCompanyRepo, *fakePublisher, JobUsecase, *model.Company, bson.ObjectID) {
	t.Helper()

	jobRepo := newFakeJobRepo()
	companyRepo := newFakeCompanyRepo()
	events := &fakePublisher{}
	logger := zerolog.Nop()

	uc := NewJobUsecase(jobRepo, companyRepo, NewLookupUsecase(newFakeLookupRepo()), events, &logger)

	admin := bson.NewObjectID()
	company, err := companyRepo.CreateCompany(context.Background(), &model.Company{
		Name:     "Acme",
		AdminIDs: []bson.ObjectID{admin},
	})
	if err != nil {
		t.Fatal(err)
	}

	return jobRepo, companyRepo, events, uc, company, admin
}

func TestCreateJobStartsAsDraft(t *testing.T) {
	_, _, events, uc, company, admin := newJobFixture(t)

	job, err := uc.CreateJob(context.Background(), claimsFor(admin, company.ID.Hex()), company.ID.Hex(), payload.CreateJobRequest{
		Title:        "Backend Engineer",
		Type:         "Full-Time",
		LocationType: "Remote",
	})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}

	if job.Status != model.JobStatusDraft {
		t.Errorf("new jobs must start as drafts, got %q", job.Status)
	}
	if job.CompanyID != company.ID {
		t.Error("job not attached to the company")
	}
	if len(events.keys) != 1 || events.keys[0] != queue.KeyJobPosted {
		t.Errorf("expected a %s event, got %v", queue.KeyJobPosted, events.keys)
	}
}

func TestCreateJobForbiddenWithoutCompanyInClaims(t *testing.T) {
	_, _, _, uc, company, admin := newJobFixture(t)

	_, err := uc.CreateJob(context.Background(), claimsFor(admin), company.ID.Hex(), payload.CreateJobRequest{
		Title: "Backend Engineer",
	})
	if !errors.Is(err, ErrNotCompanyAdmin) {
		t.Errorf("expected ErrNotCompanyAdmin, got %v", err)
	}
}

func TestCreateJobCompanyGone(t *testing.T) {
	_, _, _, uc, _, admin := newJobFixture(t)

	// The claims still carry the id of a company that was deleted.
	ghost := bson.NewObjectID().Hex()
	_, err := uc.CreateJob(context.Background(), claimsFor(admin, ghost), ghost, payload.CreateJobRequest{
		Title: "Backend Engineer",
	})
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestUpdateJobAuthorizesAgainstOwningCompany(t *testing.T) {
	jobRepo, _, _, uc, company, admin := newJobFixture(t)

	job, err := jobRepo.CreateJob(context.Background(), &model.Job{
		CompanyID: company.ID,
		Title:     "Backend Engineer",
		Status:    model.JobStatusDraft,
	})
	if err != nil {
		t.Fatal(err)
	}

	live := model.JobStatusLive

	_, err = uc.UpdateJob(context.Background(), claimsFor(admin), job.ID.Hex(), payload.UpdateJobRequest{Status: &live})
	if !errors.Is(err, ErrNotCompanyAdmin) {
		t.Errorf("expected ErrNotCompanyAdmin, got %v", err)
	}

	updated, err := uc.UpdateJob(context.Background(), claimsFor(admin, company.ID.Hex()), job.ID.Hex(), payload.UpdateJobRequest{Status: &live})
	if err != nil {
		t.Fatalf("UpdateJob failed: %v", err)
	}
	if updated.Status != model.JobStatusLive {
		t.Errorf("status not updated: %q", updated.Status)
	}
}

func TestUpdateJobRejectsInvertedSalaryRange(t *testing.T) {
	jobRepo, _, _, uc, company, admin := newJobFixture(t)

	job, err := jobRepo.CreateJob(context.Background(), &model.Job{
		CompanyID: company.ID,
		Title:     "Backend Engineer",
		Status:    model.JobStatusDraft,
		SalaryMin: 50000,
		SalaryMax: 90000,
	})
	if err != nil {
		t.Fatal(err)
	}

	claims := claimsFor(admin, company.ID.Hex())
	intPtr := func(n int) *int { return &n }

	// Lowering only the maximum below the stored minimum must fail.
	_, err = uc.UpdateJob(context.Background(), claims, job.ID.Hex(), payload.UpdateJobRequest{SalaryMax: intPtr(40000)})
	if !errors.Is(err, ErrInvalidSalaryRange) {
		t.Errorf("max below stored min: expected ErrInvalidSalaryRange, got %v", err)
	}

	// Raising only the minimum above the stored maximum must fail too.
	_, err = uc.UpdateJob(context.Background(), claims, job.ID.Hex(), payload.UpdateJobRequest{SalaryMin: intPtr(100000)})
	if !errors.Is(err, ErrInvalidSalaryRange) {
		t.Errorf("min above stored max: expected ErrInvalidSalaryRange, got %v", err)
	}

	updated, err := uc.UpdateJob(context.Background(), claims, job.ID.Hex(), payload.UpdateJobRequest{
		SalaryMin: intPtr(60000),
		SalaryMax: intPtr(120000),
	})
	if err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if updated.SalaryMin != 60000 || updated.SalaryMax != 120000 {
		t.Errorf("salary not updated: %d..%d", updated.SalaryMin, updated.SalaryMax)
	}

	// Zero means the posting carries no maximum, so clearing it is fine.
	if _, err := uc.UpdateJob(context.Background(), claims, job.ID.Hex(), payload.UpdateJobRequest{SalaryMax: intPtr(0)}); err != nil {
		t.Errorf("clearing the maximum failed: %v", err)
	}
}

func TestBrowseJobsOnlyLive(t *testing.T) {
	jobRepo, _, _, uc, company, _ := newJobFixture(t)

	for _, status := range []string{model.JobStatusDraft, model.JobStatusLive, model.JobStatusClosed} {
		if _, err := jobRepo.CreateJob(context.Background(), &model.Job{
			CompanyID: company.ID,
			Title:     "Role " + status,
			Status:    status,
		}); err != nil {
			t.Fatal(err)
		}
	}

	jobs, err := uc.BrowseJobs(context.Background(), repository.FilterJobsParams{})
	if err != nil {
		t.Fatalf("BrowseJobs failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Status != model.JobStatusLive {
		t.Errorf("browse should surface live jobs only, got %v", jobs)
	}
}

func TestListCompanyJobsRequiresMembership(t *testing.T) {
	_, _, _, uc, company, admin := newJobFixture(t)

	if _, err := uc.ListCompanyJobs(context.Background(), claimsFor(admin), company.ID.Hex(), repository.FilterJobsParams{}); !errors.Is(err, ErrNotCompanyAdmin) {
		t.Errorf("expected ErrNotCompanyAdmin, got %v", err)
	}

	if _, err := uc.ListCompanyJobs(context.Background(), claimsFor(admin, company.ID.Hex()), company.ID.Hex(), repository.FilterJobsParams{}); err != nil {
		t.Errorf("admin listing failed: %v", err)
	}
}

func TestGetJobNotFound(t *testing.T) {
	_, _, _, uc, _, _ := newJobFixture(t)

	if _, err := uc.GetJob(context.Background(), bson.NewObjectID().Hex()); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}
