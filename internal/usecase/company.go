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

// CompanyUsecase defines the interface for company profile use cases.
// Mutations are authorized against the caller's session claims: the
// company id set baked into the token at login, not the current admin
// list in the database.
type CompanyUsecase interface {
	CreateCompany(ctx context.Context, claims *auth.SessionClaims, req payload.CreateCompanyRequest) (*model.Company, error)
	GetCompany(ctx context.Context, id string) (*model.Company, error)
	UpdateCompany(ctx context.Context, claims *auth.SessionClaims, id string, req payload.UpdateCompanyRequest) (*model.Company, error)
	ListMyCompanies(ctx context.Context, claims *auth.SessionClaims) ([]*model.Company, error)
}

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrNotCompanyAdmin   = errors.New("not an admin of this company")
	ErrTooManyIndustries = errors.New("a company can have at most 3 industries")
)

type companyUsecase struct {
	companyRepo repository.CompanyRepository
	lookups     LookupUsecase
}

func NewCompanyUsecase(companyRepo repository.CompanyRepository, lookups LookupUsecase) CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		lookups:     lookups,
	}
}

func (u *companyUsecase) CreateCompany(
	ctx context.Context,
	claims *auth.SessionClaims,
	req payload.CreateCompanyRequest,
) (*model.Company, error) {
	creatorID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, err
	}

	company := &model.Company{
		Name:        req.Name,
		Tagline:     req.Tagline,
		About:       req.About,
		Website:     req.Website,
		Size:        req.Size,
		FoundedYear: req.FoundedYear,
		LogoURL:     req.LogoURL,
		AdminIDs:    []bson.ObjectID{creatorID},
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.SocialLinks != nil {
		company.SocialLinks = *req.SocialLinks
	}

	company.SpecialtyIDs, err = u.lookups.ResolveRefs(ctx, model.LookupSpecialty, req.Specialties)
	if err != nil {
		return nil, err
	}
	company.ServiceIDs, err = u.lookups.ResolveRefs(ctx, model.LookupService, req.Services)
	if err != nil {
		return nil, err
	}
	company.IndustryIDs, err = u.lookups.ResolveRefs(ctx, model.LookupIndustry, req.Industries)
	if err != nil {
		return nil, err
	}
	if len(company.IndustryIDs) > model.MaxCompanyIndustries {
		return nil, ErrTooManyIndustries
	}

	return u.companyRepo.CreateCompany(ctx, company)
}

func (u *companyUsecase) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	company, err := u.companyRepo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	return company, nil
}

func (u *companyUsecase) UpdateCompany(
	ctx context.Context,
	claims *auth.SessionClaims,
	id string,
	req payload.UpdateCompanyRequest,
) (*model.Company, error) {
	if !claims.ManagesCompany(id) {
		return nil, ErrNotCompanyAdmin
	}

	params := repository.UpdateCompanyParams{
		Name:        req.Name,
		Tagline:     req.Tagline,
		About:       req.About,
		Website:     req.Website,
		Size:        req.Size,
		FoundedYear: req.FoundedYear,
		LogoURL:     req.LogoURL,
		Address:     req.Address,
		SocialLinks: req.SocialLinks,
	}

	if req.Specialties != nil {
		ids, err := u.lookups.ResolveRefs(ctx, model.LookupSpecialty, *req.Specialties)
		if err != nil {
			return nil, err
		}
		params.SpecialtyIDs = &ids
	}
	if req.Services != nil {
		ids, err := u.lookups.ResolveRefs(ctx, model.LookupService, *req.Services)
		if err != nil {
			return nil, err
		}
		params.ServiceIDs = &ids
	}
	if req.Industries != nil {
		ids, err := u.lookups.ResolveRefs(ctx, model.LookupIndustry, *req.Industries)
		if err != nil {
			return nil, err
		}
		if len(ids) > model.MaxCompanyIndustries {
			return nil, ErrTooManyIndustries
		}
		params.IndustryIDs = &ids
	}

	company, err := u.companyRepo.UpdateCompany(ctx, id, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	return company, nil
}

func (u *companyUsecase) ListMyCompanies(
	ctx context.Context,
	claims *auth.SessionClaims,
) ([]*model.Company, error) {
	userID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.companyRepo.ListCompaniesByAdmin(ctx, userID)
}
