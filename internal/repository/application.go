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

// ApplicationRepository defines the interface for job application operations.
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, application *model.Application) (*model.Application, error)
	ListApplicationsByUser(ctx context.Context, userID bson.ObjectID) ([]*model.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID bson.ObjectID) ([]*model.Application, error)
}

const applicationCollection = "applications"

type applicationMongoRepository struct {
	db *mongo.Database
}

func NewApplicationMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) ApplicationRepository {
	collection := db.Collection(applicationCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job_id", Value: 1}, {Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create application indexes")
	}

	return &applicationMongoRepository{db: db}
}

func (r *applicationMongoRepository) CreateApplication(
	ctx context.Context,
	application *model.Application,
) (*model.Application, error) {
	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now

	result, err := r.db.Collection(applicationCollection).InsertOne(ctx, application)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		application.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return application, nil
}

func (r *applicationMongoRepository) ListApplicationsByUser(
	ctx context.Context,
	userID bson.ObjectID,
) ([]*model.Application, error) {
	return r.findApplications(ctx, bson.M{"user_id": userID})
}

func (r *applicationMongoRepository) ListApplicationsByJob(
	ctx context.Context,
	jobID bson.ObjectID,
) ([]*model.Application, error) {
	return r.findApplications(ctx, bson.M{"job_id": jobID})
}

func (r *applicationMongoRepository) findApplications(ctx context.Context, filter bson.M) ([]*model.Application, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(applicationCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var applications []*model.Application
	for cursor.Next(ctx) {
		var application model.Application
		if err := cursor.Decode(&application); err != nil {
			return nil, err
		}
		applications = append(applications, &application)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}
