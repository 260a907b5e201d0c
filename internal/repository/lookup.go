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

// LookupRepository defines the interface for the shared lookup entity
// collections (skills, specialties, services, industries). All four share
// the same {_id, name} shape, so one repository serves them all, keyed by
// kind.
type LookupRepository interface {
	Search(ctx context.Context, kind model.LookupKind, query string, limit int64) ([]*model.LookupEntity, error)
	GetByName(ctx context.Context, kind model.LookupKind, name string) (*model.LookupEntity, error)
	GetByIDs(ctx context.Context, kind model.LookupKind, ids []bson.ObjectID) ([]*model.LookupEntity, error)
	Create(ctx context.Context, kind model.LookupKind, name string) (*model.LookupEntity, error)
}

var lookupKinds = []model.LookupKind{
	model.LookupSkill,
	model.LookupSpecialty,
	model.LookupService,
	model.LookupIndustry,
}

type lookupMongoRepository struct {
	db *mongo.Database
}

// NewLookupMongoRepository creates the repository and ensures a unique
// name index on every lookup collection. The unique index is what closes
// the duplicate-name window between concurrent create calls.
func NewLookupMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) LookupRepository {
	for _, kind := range lookupKinds {
		_, err := db.Collection(string(kind)).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			logger.Fatal().Err(err).Str("kind", string(kind)).Msg("failed to create lookup indexes")
		}
	}

	return &lookupMongoRepository{db: db}
}

func (r *lookupMongoRepository) Search(
	ctx context.Context,
	kind model.LookupKind,
	query string,
	limit int64,
) ([]*model.LookupEntity, error) {
	filter := bson.M{}
	if query != "" {
		filter["name"] = bson.M{"$regex": query, "$options": "i"}
	}

	if limit == 0 {
		limit = 20
	}
	findOptions := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.db.Collection(string(kind)).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entities []*model.LookupEntity
	for cursor.Next(ctx) {
		var entity model.LookupEntity
		if err := cursor.Decode(&entity); err != nil {
			return nil, err
		}
		entities = append(entities, &entity)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *lookupMongoRepository) GetByName(
	ctx context.Context,
	kind model.LookupKind,
	name string,
) (*model.LookupEntity, error) {
	result := r.db.Collection(string(kind)).FindOne(ctx, bson.M{"name": name})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var entity model.LookupEntity
	if err := result.Decode(&entity); err != nil {
		return nil, err
	}

	return &entity, nil
}

func (r *lookupMongoRepository) GetByIDs(
	ctx context.Context,
	kind model.LookupKind,
	ids []bson.ObjectID,
) ([]*model.LookupEntity, error) {
	cursor, err := r.db.Collection(string(kind)).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var entities []*model.LookupEntity
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *lookupMongoRepository) Create(
	ctx context.Context,
	kind model.LookupKind,
	name string,
) (*model.LookupEntity, error) {
	now := time.Now()
	entity := &model.LookupEntity{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := r.db.Collection(string(kind)).InsertOne(ctx, entity)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		entity.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return entity, nil
}
