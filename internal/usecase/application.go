package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/saranyu/jobboard-api/internal/auth"
	"github.com/saranyu/jobboard-api/internal/model"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/repository"
)

// ApplicationUsecase defines the interface for job application use cases.
type ApplicationUsecase interface {
	Apply(ctx context.Context, claims *auth.SessionClaims, jobID string, req payload.ApplyRequest) (*model.Application, error)
	ListMyApplications(ctx context.Context, claims *auth.SessionClaims) ([]*model.Application, error)
	ListJobApplications(ctx context.Context, claims *auth.SessionClaims, jobID string) ([]*model.Application, error)
}

var (
	ErrJobNotOpen     = errors.New("job is not open for applications")
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrMissingAnswers = errors.New("required screening questions are unanswered")
)

type applicationUsecase struct {
	applicationRepo repository.ApplicationRepository
	jobRepo         repository.JobRepository
}

func NewApplicationUsecase(
	applicationRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
) ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

func (u *applicationUsecase) Apply(
	ctx context.Context,
	claims *auth.SessionClaims,
	jobID string,
	req payload.ApplyRequest,
) (*model.Application, error) {
	job, err := u.jobRepo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if job.Status != model.JobStatusLive {
		return nil, ErrJobNotOpen
	}

	if err := checkScreeningAnswers(job.ScreeningQuestions, req.Answers); err != nil {
		return nil, err
	}

	userID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, err
	}

	application := &model.Application{
		JobID:     job.ID,
		CompanyID: job.CompanyID,
		UserID:    userID,
		Status:    model.ApplicationStatusSubmitted,
		Answers:   req.Answers,
	}

	application, err = u.applicationRepo.CreateApplication(ctx, application)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	return application, nil
}

func (u *applicationUsecase) ListMyApplications(
	ctx context.Context,
	claims *auth.SessionClaims,
) ([]*model.Application, error) {
	userID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.applicationRepo.ListApplicationsByUser(ctx, userID)
}

func (u *applicationUsecase) ListJobApplications(
	ctx context.Context,
	claims *auth.SessionClaims,
	jobID string,
) ([]*model.Application, error) {
	job, err := u.jobRepo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if !claims.ManagesCompany(job.CompanyID.Hex()) {
		return nil, ErrNotCompanyAdmin
	}

	return u.applicationRepo.ListApplicationsByJob(ctx, job.ID)
}

func checkScreeningAnswers(questions []model.ScreeningQuestion, answers []model.ScreeningAnswer) error {
	answered := make(map[string]bool, len(answers))
	for _, answer := range answers {
		if answer.Answer != "" {
			answered[answer.Question] = true
		}
	}

	for _, question := range questions {
		if question.Required && !answered[question.Question] {
			return ErrMissingAnswers
		}
	}

	return nil
}
