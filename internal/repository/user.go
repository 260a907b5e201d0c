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

// ErrNoFieldsToUpdate reports an update whose params carried no fields,
// so there is nothing to write.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id string, params UpdateProfileParams) (*model.User, error)
	SetOTP(ctx context.Context, id string, digest string, expiresAt time.Time) error
	MarkEmailVerified(ctx context.Context, id string, verifiedAt time.Time) error
}

// UpdateProfileParams defines the optional parameters for updating a user
// profile. Each field addresses one logical sub-object; only non-nil
// sections are written, and embedded arrays are replaced wholesale.
type UpdateProfileParams struct {
	Username       *string
	FirstName      *string
	LastName       *string
	Headline       *string
	About          *string
	PhoneNumber    *string
	ProfilePicture *string

	SkillIDs  *[]bson.ObjectID
	Languages *[]string

	Education      *[]model.Education
	Certifications *[]model.Certification
	Courses        *[]model.Course
	Projects       *[]model.Project
	Awards         *[]model.Award
	References     *[]model.ReferenceContact
}

const userCollection = "users"

type userMongoRepository struct {
	db *mongo.Database
}

func NewUserMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) UserRepository {
	collection := db.Collection(userCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create user indexes")
	}

	return &userMongoRepository{db: db}
}

func (r *userMongoRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return user, nil
}

func (r *userMongoRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	result := r.db.Collection(userCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userMongoRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	result := r.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userMongoRepository) UpdateProfile(
	ctx context.Context,
	id string,
	params UpdateProfileParams,
) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.Username != nil {
		updateMap["username"] = *params.Username
	}
	if params.FirstName != nil {
		updateMap["first_name"] = *params.FirstName
	}
	if params.LastName != nil {
		updateMap["last_name"] = *params.LastName
	}
	if params.Headline != nil {
		updateMap["headline"] = *params.Headline
	}
	if params.About != nil {
		updateMap["about"] = *params.About
	}
	if params.PhoneNumber != nil {
		updateMap["phone_number"] = *params.PhoneNumber
	}
	if params.ProfilePicture != nil {
		updateMap["profile_picture"] = *params.ProfilePicture
	}
	if params.SkillIDs != nil {
		updateMap["skills"] = *params.SkillIDs
	}
	if params.Languages != nil {
		updateMap["languages"] = *params.Languages
	}
	if params.Education != nil {
		updateMap["education"] = *params.Education
	}
	if params.Certifications != nil {
		updateMap["certifications"] = *params.Certifications
	}
	if params.Courses != nil {
		updateMap["courses"] = *params.Courses
	}
	if params.Projects != nil {
		updateMap["projects"] = *params.Projects
	}
	if params.Awards != nil {
		updateMap["awards"] = *params.Awards
	}
	if params.References != nil {
		updateMap["references"] = *params.References
	}

	if len(updateMap) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userMongoRepository) SetOTP(ctx context.Context, id string, digest string, expiresAt time.Time) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{
			"otp":        digest,
			"otp_expiry": expiresAt,
			"updated_at": time.Now(),
		}},
	)

	return result.Err()
}

func (r *userMongoRepository) MarkEmailVerified(ctx context.Context, id string, verifiedAt time.Time) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	// Verification and OTP cleanup happen in a single update.
	result := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{
			"$set":   bson.M{"email_verified": verifiedAt, "updated_at": time.Now()},
			"$unset": bson.M{"otp": "", "otp_expiry": ""},
		},
	)

	return result.Err()
}
