package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/saranyu/jobboard-api/internal/auth"
	"github.com/saranyu/jobboard-api/internal/model"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/queue"
	"github.com/saranyu/jobboard-api/internal/repository"
)

// JobUsecase defines the interface for job posting use cases. Mutations
// are authorized against the company id snapshot in the caller's session
// claims, the same way CompanyUsecase authorizes company mutations.
type JobUsecase interface {
	CreateJob(ctx context.Context, claims *auth.SessionClaims, companyID string, req payload.CreateJobRequest) (*model.Job, error)
	GetJob(ctx context.Context, id string) (*model.Job, error)
	UpdateJob(ctx context.Context, claims *auth.SessionClaims, id string, req payload.UpdateJobRequest) (*model.Job, error)
	ListCompanyJobs(ctx context.Context, claims *auth.SessionClaims, companyID string, params repository.FilterJobsParams) ([]*model.Job, error)
	BrowseJobs(ctx context.Context, params repository.FilterJobsParams) ([]*model.Job, error)
}

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrInvalidSalaryRange = errors.New("salary_max must not be below salary_min")
)

type jobUsecase struct {
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
	lookups     LookupUsecase
	events      queue.Publisher
	logger      *zerolog.Logger
}

func NewJobUsecase(
	jobRepo repository.JobRepository,
	companyRepo repository.CompanyRepository,
	lookups LookupUsecase,
	events queue.Publisher,
	logger *zerolog.Logger,
) JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		lookups:     lookups,
		events:      events,
		logger:      logger,
	}
}

func (u *jobUsecase) CreateJob(
	ctx context.Context,
	claims *auth.SessionClaims,
	companyID string,
	req payload.CreateJobRequest,
) (*model.Job, error) {
	if !claims.ManagesCompany(companyID) {
		return nil, ErrNotCompanyAdmin
	}

	company, err := u.companyRepo.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	skillIDs, err := u.lookups.ResolveRefs(ctx, model.LookupSkill, req.Skills)
	if err != nil {
		return nil, err
	}

	// New postings always start as drafts; going live is a separate,
	// deliberate update.
	job := &model.Job{
		CompanyID:          company.ID,
		Title:              req.Title,
		Type:               req.Type,
		LocationType:       req.LocationType,
		Status:             model.JobStatusDraft,
		Description:        req.Description,
		Location:           req.Location,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		SalaryCurrency:     req.SalaryCurrency,
		SkillIDs:           skillIDs,
		Geolocation:        req.Geolocation,
		ScreeningQuestions: req.ScreeningQuestions,
	}

	job, err = u.jobRepo.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}

	if err := u.events.Publish(ctx, queue.KeyJobPosted, queue.JobPosted{
		JobID:     job.ID.Hex(),
		CompanyID: job.CompanyID.Hex(),
		Title:     job.Title,
		Status:    job.Status,
	}); err != nil {
		u.logger.Error().Err(err).Msg("failed to publish job.posted event")
	}

	return job, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*model.Job, error) {
	job, err := u.jobRepo.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	return job, nil
}

func (u *jobUsecase) UpdateJob(
	ctx context.Context,
	claims *auth.SessionClaims,
	id string,
	req payload.UpdateJobRequest,
) (*model.Job, error) {
	job, err := u.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if !claims.ManagesCompany(job.CompanyID.Hex()) {
		return nil, ErrNotCompanyAdmin
	}

	// The range check runs against the merged values so a partial update
	// cannot push the stored maximum below the stored minimum.
	salaryMin, salaryMax := job.SalaryMin, job.SalaryMax
	if req.SalaryMin != nil {
		salaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		salaryMax = *req.SalaryMax
	}
	if salaryMax != 0 && salaryMax < salaryMin {
		return nil, ErrInvalidSalaryRange
	}

	params := repository.UpdateJobParams{
		Title:              req.Title,
		Type:               req.Type,
		LocationType:       req.LocationType,
		Status:             req.Status,
		Description:        req.Description,
		Location:           req.Location,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		SalaryCurrency:     req.SalaryCurrency,
		Geolocation:        req.Geolocation,
		ScreeningQuestions: req.ScreeningQuestions,
	}

	if req.Skills != nil {
		skillIDs, err := u.lookups.ResolveRefs(ctx, model.LookupSkill, *req.Skills)
		if err != nil {
			return nil, err
		}
		params.SkillIDs = &skillIDs
	}

	job, err = u.jobRepo.UpdateJob(ctx, id, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	return job, nil
}

func (u *jobUsecase) ListCompanyJobs(
	ctx context.Context,
	claims *auth.SessionClaims,
	companyID string,
	params repository.FilterJobsParams,
) ([]*model.Job, error) {
	if !claims.ManagesCompany(companyID) {
		return nil, ErrNotCompanyAdmin
	}

	objectID, err := bson.ObjectIDFromHex(companyID)
	if err != nil {
		return nil, ErrCompanyNotFound
	}

	return u.jobRepo.ListCompanyJobs(ctx, objectID, params)
}

func (u *jobUsecase) BrowseJobs(ctx context.Context, params repository.FilterJobsParams) ([]*model.Job, error) {
	return u.jobRepo.ListLiveJobs(ctx, params)
}
