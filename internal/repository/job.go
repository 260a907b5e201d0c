package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/saranyu/jobboard-api/internal/model"
)

// JobRepository defines the interface for job-related database operations.
type JobRepository interface {
	CreateJob(ctx context.Context, job *model.Job) (*model.Job, error)
	GetJob(ctx context.Context, id string) (*model.Job, error)
	UpdateJob(ctx context.Context, id string, params UpdateJobParams) (*model.Job, error)
	ListCompanyJobs(ctx context.Context, companyID bson.ObjectID, params FilterJobsParams) ([]*model.Job, error)
	ListLiveJobs(ctx context.Context, params FilterJobsParams) ([]*model.Job, error)
}

// UpdateJobParams defines the optional parameters for updating a job.
// Only the fields that are not nil will be updated.
type UpdateJobParams struct {
	Title        *string
	Type         *string
	LocationType *string
	Status       *string
	Description  *string
	Location     *string

	SalaryMin      *int
	SalaryMax      *int
	SalaryCurrency *string

	SkillIDs           *[]bson.ObjectID
	Geolocation        *model.GeoPoint
	ScreeningQuestions *[]model.ScreeningQuestion
}

// FilterJobsParams defines the parameters for filtering and paginating jobs.
type FilterJobsParams struct {
	Status *string
	Search *string
	Limit  uint64
	Offset uint64
}

const jobCollection = "jobs"

type jobMongoRepository struct {
	db *mongo.Database
}

func NewJobMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) JobRepository {
	collection := db.Collection(jobCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "job_post_status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "job_post_status", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create job indexes")
	}

	return &jobMongoRepository{db: db}
}

func (r *jobMongoRepository) CreateJob(ctx context.Context, job *model.Job) (*model.Job, error) {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	result, err := r.db.Collection(jobCollection).InsertOne(ctx, job)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		job.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return job, nil
}

func (r *jobMongoRepository) GetJob(ctx context.Context, id string) (*model.Job, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	result := r.db.Collection(jobCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var job model.Job
	if err := result.Decode(&job); err != nil {
		return nil, err
	}

	return &job, nil
}

func (r *jobMongoRepository) UpdateJob(ctx context.Context, id string, params UpdateJobParams) (*model.Job, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.Title != nil {
		updateMap["job_title"] = *params.Title
	}
	if params.Type != nil {
		updateMap["job_type"] = *params.Type
	}
	if params.LocationType != nil {
		updateMap["job_location_type"] = *params.LocationType
	}
	if params.Status != nil {
		updateMap["job_post_status"] = *params.Status
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.Location != nil {
		updateMap["location"] = *params.Location
	}
	if params.SalaryMin != nil {
		updateMap["salary_min"] = *params.SalaryMin
	}
	if params.SalaryMax != nil {
		updateMap["salary_max"] = *params.SalaryMax
	}
	if params.SalaryCurrency != nil {
		updateMap["salary_currency"] = *params.SalaryCurrency
	}
	if params.SkillIDs != nil {
		updateMap["skills"] = *params.SkillIDs
	}
	if params.Geolocation != nil {
		updateMap["geolocation"] = *params.Geolocation
	}
	if params.ScreeningQuestions != nil {
		updateMap["screening_questions"] = *params.ScreeningQuestions
	}

	if len(updateMap) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(jobCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var job model.Job
	if err := result.Decode(&job); err != nil {
		return nil, err
	}

	return &job, nil
}

func (r *jobMongoRepository) ListCompanyJobs(
	ctx context.Context,
	companyID bson.ObjectID,
	params FilterJobsParams,
) ([]*model.Job, error) {
	filter := bson.M{"company_id": companyID}
	applyJobFilters(filter, params)

	return r.findJobs(ctx, filter, params)
}

func (r *jobMongoRepository) ListLiveJobs(ctx context.Context, params FilterJobsParams) ([]*model.Job, error) {
	filter := bson.M{"job_post_status": model.JobStatusLive}
	if params.Search != nil {
		filter["job_title"] = bson.M{"$regex": *params.Search, "$options": "i"}
	}

	return r.findJobs(ctx, filter, params)
}

func applyJobFilters(filter bson.M, params FilterJobsParams) {
	if params.Status != nil {
		filter["job_post_status"] = *params.Status
	}
	if params.Search != nil {
		filter["job_title"] = bson.M{"$regex": *params.Search, "$options": "i"}
	}
}

func (r *jobMongoRepository) findJobs(ctx context.Context, filter bson.M, params FilterJobsParams) ([]*model.Job, error) {
	findOptions := options.Find()

	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	findOptions.SetLimit(int64(limit))

	if params.Offset > 0 {
		findOptions.SetSkip(int64(params.Offset))
	}

	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(jobCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []*model.Job
	for cursor.Next(ctx) {
		var job model.Job
		if err := cursor.Decode(&job); err != nil {
			return nil, err
		}
		jobs = append(jobs, &job)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
