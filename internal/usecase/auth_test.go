package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/saranyu/jobboard-api/internal/auth"
	"github.com/saranyu/jobboard-api/internal/model"
	"github.com/saranyu/jobboard-api/internal/provider"
	"github.com/saranyu/jobboard-api/internal/queue"
	"github.com/saranyu/jobboard-api/internal/security"
)

func testJWTAuth() auth.JWTAuthenticator {
	return auth.NewJWTAuthenticator("test-secret", "jobboard-test", time.Hour)
}

func newAuthFixture() (*fakeUserRepo, *fakeCompanyRepo, *fakePublisher, AuthUsecase, auth.JWTAuthenticator) {
	userRepo := newFakeUserRepo()
	companyRepo := newFakeCompanyRepo()
	events := &fakePublisher{}
	jwtAuth := testJWTAuth()
	logger := zerolog.Nop()

	uc := NewAuthUsecase(userRepo, companyRepo, jwtAuth, &fakeGoogleValidator{}, events, &logger)

	return userRepo, companyRepo, events, uc, jwtAuth
}

func TestRegisterIssuesToken(t *testing.T) {
	userRepo, _, events, uc, jwtAuth := newAuthFixture()

	token, err := uc.Register(context.Background(), RegisterParams{
		Email:     "ava@example.com",
		Password:  "correct horse",
		Username:  "ava",
		FirstName: "Ava",
		LastName:  "Stone",
		Role:      model.RoleEmployer,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	claims, err := jwtAuth.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.Email != "ava@example.com" || claims.Role != model.RoleEmployer {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.EmailVerified != nil {
		t.Error("new user should not be email verified")
	}

	user, err := userRepo.GetUserByEmail(context.Background(), "ava@example.com")
	if err != nil {
		t.Fatalf("user was not stored: %v", err)
	}
	if user.PasswordHash == "correct horse" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}

	if len(events.keys) != 1 || events.keys[0] != queue.KeyUserRegistered {
		t.Errorf("expected a %s event, got %v", queue.KeyUserRegistered, events.keys)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, _, _, uc, _ := newAuthFixture()

	params := RegisterParams{Email: "dup@example.com", Password: "password123", Username: "dup"}
	if _, err := uc.Register(context.Background(), params); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := uc.Register(context.Background(), params); !errors.Is(err, ErrUserAlreadyExists) {
		t.Errorf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	_, _, _, uc, _ := newAuthFixture()

	if _, err := uc.Register(context.Background(), RegisterParams{
		Email: "bo@example.com", Password: "password123", Username: "bo",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, errWrongPassword := uc.Login(context.Background(), LoginParams{Email: "bo@example.com", Password: "nope"})
	_, errUnknownEmail := uc.Login(context.Background(), LoginParams{Email: "ghost@example.com", Password: "nope"})

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errUnknownEmail)
	}
}

func TestLoginSnapshotsCompanyIDs(t *testing.T) {
	userRepo, companyRepo, _, uc, jwtAuth := newAuthFixture()

	hash, err := security.HashPassword("password123")
	if err != nil {
		t.Fatal(err)
	}
	user, err := userRepo.CreateUser(context.Background(), &model.User{
		Email:        "founder@example.com",
		PasswordHash: hash,
		Role:         model.RoleEmployer,
	})
	if err != nil {
		t.Fatal(err)
	}

	company, err := companyRepo.CreateCompany(context.Background(), &model.Company{
		Name:     "Acme",
		AdminIDs: []bson.ObjectID{user.ID},
	})
	if err != nil {
		t.Fatal(err)
	}

	token, err := uc.Login(context.Background(), LoginParams{Email: "founder@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := jwtAuth.ValidateSessionToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if !claims.ManagesCompany(company.ID.Hex()) {
		t.Errorf("claims should carry company %s, got %v", company.ID.Hex(), claims.CompanyIDs)
	}

	// The snapshot is taken at login; a company created afterwards does
	// not appear in an already issued token.
	later, err := companyRepo.CreateCompany(context.Background(), &model.Company{
		Name:     "Later Inc",
		AdminIDs: []bson.ObjectID{user.ID},
	})
	if err != nil {
		t.Fatal(err)
	}
	if claims.ManagesCompany(later.ID.Hex()) {
		t.Error("stale token must not cover companies created after login")
	}
}

func TestGoogleLoginCreatesVerifiedUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	companyRepo := newFakeCompanyRepo()
	events := &fakePublisher{}
	jwtAuth := testJWTAuth()
	logger := zerolog.Nop()
	google := &fakeGoogleValidator{identity: &provider.GoogleIdentity{
		Subject:       "google-sub",
		Email:         "g@example.com",
		EmailVerified: true,
	}}

	uc := NewAuthUsecase(userRepo, companyRepo, jwtAuth, google, events, &logger)

	token, err := uc.GoogleLogin(context.Background(), "id-token")
	if err != nil {
		t.Fatalf("GoogleLogin failed: %v", err)
	}

	claims, err := jwtAuth.ValidateSessionToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.EmailVerified == nil {
		t.Error("google identity with verified email should carry a verified timestamp")
	}

	user, err := userRepo.GetUserByEmail(context.Background(), "g@example.com")
	if err != nil {
		t.Fatalf("user was not created: %v", err)
	}
	if user.Provider != model.ProviderGoogle {
		t.Errorf("expected provider %q, got %q", model.ProviderGoogle, user.Provider)
	}

	// A second login reuses the account instead of creating another one.
	if _, err := uc.GoogleLogin(context.Background(), "id-token"); err != nil {
		t.Fatalf("second GoogleLogin failed: %v", err)
	}
	if len(userRepo.users) != 1 {
		t.Errorf("expected one user, got %d", len(userRepo.users))
	}
}

func TestGoogleLoginRejectsBadToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	companyRepo := newFakeCompanyRepo()
	jwtAuth := testJWTAuth()
	logger := zerolog.Nop()
	google := &fakeGoogleValidator{err: errors.New("audience mismatch")}

	uc := NewAuthUsecase(userRepo, companyRepo, jwtAuth, google, &fakePublisher{}, &logger)

	if _, err := uc.GoogleLogin(context.Background(), "bad"); !errors.Is(err, ErrInvalidIDToken) {
		t.Errorf("expected ErrInvalidIDToken, got %v", err)
	}
}
