package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/saranyu/jobboard-api/internal/auth"
	"github.com/saranyu/jobboard-api/internal/model"
	"github.com/saranyu/jobboard-api/internal/provider"
	"github.com/saranyu/jobboard-api/internal/queue"
	"github.com/saranyu/jobboard-api/internal/repository"
	"github.com/saranyu/jobboard-api/internal/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (string, error)
	Login(ctx context.Context, params LoginParams) (string, error)
	GoogleLogin(ctx context.Context, idToken string) (string, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Email     string
	Password  string
	Username  string
	FirstName string
	LastName  string
	Role      string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidIDToken     = errors.New("invalid google id token")
)

type authUsecase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtAuth     auth.JWTAuthenticator
	google      provider.GoogleIDTokenValidator
	events      queue.Publisher
	logger      *zerolog.Logger
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	jwtAuth auth.JWTAuthenticator,
	google provider.GoogleIDTokenValidator,
	events queue.Publisher,
	logger *zerolog.Logger,
) AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtAuth:     jwtAuth,
		google:      google,
		events:      events,
		logger:      logger,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (string, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return "", err
	}

	role := params.Role
	if role == "" {
		role = model.RoleJobSeeker
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Email:        params.Email,
		Username:     params.Username,
		PasswordHash: passwordHash,
		Provider:     model.ProviderLocal,
		Role:         role,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrUserAlreadyExists
		}

		return "", err
	}

	if err := u.events.Publish(ctx, queue.KeyUserRegistered, queue.UserRegistered{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
	}); err != nil {
		u.logger.Error().Err(err).Msg("failed to publish user.registered event")
	}

	return u.issueSessionToken(ctx, user)
}

// Login checks the email and password against the stored hash. The lookup
// is a case-sensitive equality match, and a missing user and a wrong
// password are indistinguishable to the caller. Unverified users may log
// in; email verification gates nothing here.
func (u *authUsecase) Login(ctx context.Context, params LoginParams) (string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return "", err
	} else if !ok {
		return "", ErrInvalidCredentials
	}

	return u.issueSessionToken(ctx, user)
}

func (u *authUsecase) GoogleLogin(ctx context.Context, idToken string) (string, error) {
	identity, err := u.google.ValidateIDToken(ctx, idToken)
	if err != nil {
		return "", ErrInvalidIDToken
	}

	user, err := u.userRepo.GetUserByEmail(ctx, identity.Email)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return "", err
		}

		newUser := &model.User{
			Email:    identity.Email,
			Username: identity.Email,
			Provider: model.ProviderGoogle,
			Role:     model.RoleJobSeeker,
		}
		if identity.EmailVerified {
			now := time.Now()
			newUser.EmailVerified = &now
		}

		user, err = u.userRepo.CreateUser(ctx, newUser)
		if err != nil {
			return "", err
		}

		if err := u.events.Publish(ctx, queue.KeyUserRegistered, queue.UserRegistered{
			UserID: user.ID.Hex(),
			Email:  user.Email,
			Role:   user.Role,
		}); err != nil {
			u.logger.Error().Err(err).Msg("failed to publish user.registered event")
		}
	}

	return u.issueSessionToken(ctx, user)
}

// issueSessionToken assembles the session claims from the user record and
// the companies the user currently administers, and signs them. The
// company id set is a snapshot taken here, at login, and is not refreshed
// for the lifetime of the token.
func (u *authUsecase) issueSessionToken(ctx context.Context, user *model.User) (string, error) {
	companies, err := u.companyRepo.ListCompaniesByAdmin(ctx, user.ID)
	if err != nil {
		return "", err
	}

	companyIDs := make([]string, 0, len(companies))
	for _, company := range companies {
		companyIDs = append(companyIDs, company.ID.Hex())
	}

	return u.jwtAuth.GenerateSessionToken(auth.SessionClaims{
		UserID:         user.ID.Hex(),
		Email:          user.Email,
		Username:       user.Username,
		Role:           user.Role,
		EmailVerified:  user.EmailVerified,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ProfilePicture: user.ProfilePicture,
		CompanyIDs:     companyIDs,
	})
}
