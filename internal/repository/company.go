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

// CompanyRepository defines the interface for company-related database operations.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *model.Company) (*model.Company, error)
	GetCompany(ctx context.Context, id string) (*model.Company, error)
	UpdateCompany(ctx context.Context, id string, params UpdateCompanyParams) (*model.Company, error)
	ListCompaniesByAdmin(ctx context.Context, adminID bson.ObjectID) ([]*model.Company, error)
}

// UpdateCompanyParams defines the optional parameters for updating a company.
// Only the fields that are not nil will be updated.
type UpdateCompanyParams struct {
	Name        *string
	Tagline     *string
	About       *string
	Website     *string
	Size        *string
	FoundedYear *int
	LogoURL     *string

	Address     *model.Address
	SocialLinks *model.SocialLinks

	SpecialtyIDs *[]bson.ObjectID
	ServiceIDs   *[]bson.ObjectID
	IndustryIDs  *[]bson.ObjectID
}

const companyCollection = "companies"

type companyMongoRepository struct {
	db *mongo.Database
}

func NewCompanyMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) CompanyRepository {
	collection := db.Collection(companyCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "admins", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create company indexes")
	}

	return &companyMongoRepository{db: db}
}

func (r *companyMongoRepository) CreateCompany(ctx context.Context, company *model.Company) (*model.Company, error) {
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	result, err := r.db.Collection(companyCollection).InsertOne(ctx, company)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		company.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return company, nil
}

func (r *companyMongoRepository) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	result := r.db.Collection(companyCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var company model.Company
	if err := result.Decode(&company); err != nil {
		return nil, err
	}

	return &company, nil
}

func (r *companyMongoRepository) UpdateCompany(
	ctx context.Context,
	id string,
	params UpdateCompanyParams,
) (*model.Company, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.Name != nil {
		updateMap["name"] = *params.Name
	}
	if params.Tagline != nil {
		updateMap["tagline"] = *params.Tagline
	}
	if params.About != nil {
		updateMap["about"] = *params.About
	}
	if params.Website != nil {
		updateMap["website"] = *params.Website
	}
	if params.Size != nil {
		updateMap["size"] = *params.Size
	}
	if params.FoundedYear != nil {
		updateMap["founded_year"] = *params.FoundedYear
	}
	if params.LogoURL != nil {
		updateMap["logo_url"] = *params.LogoURL
	}
	if params.Address != nil {
		updateMap["address"] = *params.Address
	}
	if params.SocialLinks != nil {
		updateMap["social_links"] = *params.SocialLinks
	}
	if params.SpecialtyIDs != nil {
		updateMap["specialties"] = *params.SpecialtyIDs
	}
	if params.ServiceIDs != nil {
		updateMap["services"] = *params.ServiceIDs
	}
	if params.IndustryIDs != nil {
		updateMap["industries"] = *params.IndustryIDs
	}

	if len(updateMap) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(companyCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var company model.Company
	if err := result.Decode(&company); err != nil {
		return nil, err
	}

	return &company, nil
}

func (r *companyMongoRepository) ListCompaniesByAdmin(
	ctx context.Context,
	adminID bson.ObjectID,
) ([]*model.Company, error) {
	cursor, err := r.db.Collection(companyCollection).Find(ctx, bson.M{"admins": adminID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []*model.Company
	for cursor.Next(ctx) {
		var company model.Company
		if err := cursor.Decode(&company); err != nil {
			return nil, err
		}
		companies = append(companies, &company)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}
