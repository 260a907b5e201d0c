package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/saranyu/jobboard-api/internal/model"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/repository"
)

// UserUsecase defines the interface for user profile use cases.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID string, req payload.UpdateProfileRequest) (*model.User, error)
}

type userUsecase struct {
	userRepo repository.UserRepository
	lookups  LookupUsecase
}

func NewUserUsecase(userRepo repository.UserRepository, lookups LookupUsecase) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		lookups:  lookups,
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (u *userUsecase) UpdateProfile(
	ctx context.Context,
	userID string,
	req payload.UpdateProfileRequest,
) (*model.User, error) {
	params := repository.UpdateProfileParams{
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Headline:       req.Headline,
		About:          req.About,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: req.ProfilePicture,
		Languages:      req.Languages,
		Education:      req.Education,
		Certifications: req.Certifications,
		Courses:        req.Courses,
		Projects:       req.Projects,
		Awards:         req.Awards,
		References:     req.References,
	}

	if req.Skills != nil {
		skillIDs, err := u.lookups.ResolveRefs(ctx, model.LookupSkill, *req.Skills)
		if err != nil {
			return nil, err
		}
		params.SkillIDs = &skillIDs
	}

	user, err := u.userRepo.UpdateProfile(ctx, userID, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}
