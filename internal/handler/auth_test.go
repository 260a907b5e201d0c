package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/saranyu/jobboard-api/internal/auth"
	"github.com/saranyu/jobboard-api/internal/model"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/usecase"
	"github.com/saranyu/jobboard-api/internal/validation"
)

type fakeAuthUsecase struct {
	token string
	err   error
}

func (f *fakeAuthUsecase) Register(ctx context.Context, params usecase.RegisterParams) (string, error) {
	return f.token, f.err
}

func (f *fakeAuthUsecase) Login(ctx context.Context, params usecase.LoginParams) (string, error) {
	return f.token, f.err
}

func (f *fakeAuthUsecase) GoogleLogin(ctx context.Context, idToken string) (string, error) {
	return f.token, f.err
}

type fakeOTPUsecase struct {
	requestErr      error
	verifyErr       error
	alreadyVerified bool
}

func (f *fakeOTPUsecase) RequestOTP(ctx context.Context, userID string) error {
	return f.requestErr
}

func (f *fakeOTPUsecase) VerifyOTP(ctx context.Context, userID, code string) (bool, error) {
	return f.alreadyVerified, f.verifyErr
}

type fakeUserUsecase struct {
	user *model.User
	err  error
}

func (f *fakeUserUsecase) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	return f.user, f.err
}

func (f *fakeUserUsecase) UpdateProfile(ctx context.Context, userID string, req payload.UpdateProfileRequest) (*model.User, error) {
	return f.user, f.err
}

type routerFixture struct {
	auth        *fakeAuthUsecase
	otp         *fakeOTPUsecase
	user        *fakeUserUsecase
	lookup      *fakeLookupUsecase
	company     *fakeCompanyUsecase
	job         *fakeJobUsecase
	application *fakeApplicationUsecase
	jwtAuth     auth.JWTAuthenticator
	router      http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	logger := zerolog.Nop()
	validate := validation.NewValidator(&logger)
	jwtAuth := auth.NewJWTAuthenticator("test-secret", "jobboard-test", time.Hour)

	f := &routerFixture{
		auth:        &fakeAuthUsecase{token: "signed-token"},
		otp:         &fakeOTPUsecase{},
		user:        &fakeUserUsecase{user: &model.User{Email: "me@example.com"}},
		lookup:      &fakeLookupUsecase{},
		company:     &fakeCompanyUsecase{},
		job:         &fakeJobUsecase{},
		application: &fakeApplicationUsecase{},
		jwtAuth:     jwtAuth,
	}

	f.router = NewRouter(Handlers{
		Auth:        NewAuthHandler(f.auth, f.otp, validate, &logger),
		User:        NewUserHandler(f.user, validate, &logger),
		Lookup:      NewLookupHandler(f.lookup, validate, &logger),
		Company:     NewCompanyHandler(f.company, validate, &logger),
		Job:         NewJobHandler(f.job, validate, &logger),
		Application: NewApplicationHandler(f.application, validate, &logger),
		Health:      NewHealthHandler(nil),
	}, jwtAuth)

	return f
}

func (f *routerFixture) bearerFor(t *testing.T, claims auth.SessionClaims) string {
	t.Helper()

	token, err := f.jwtAuth.GenerateSessionToken(claims)
	if err != nil {
		t.Fatal(err)
	}

	return "Bearer " + token
}

func (f *routerFixture) do(t *testing.T, method, path, body, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	f := newRouterFixture(t)

	body := `{"email":"a@example.com","password":"password123","username":"ava","first_name":"Ava","last_name":"Stone"}`
	rec := f.do(t, http.MethodPost, "/api/auth/register", body, "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "signed-token") {
		t.Errorf("response should carry the token: %s", rec.Body.String())
	}
}

func TestRegisterEndpointValidation(t *testing.T) {
	f := newRouterFixture(t)

	cases := map[string]string{
		"short password": `{"email":"a@example.com","password":"short","username":"ava"}`,
		"bad email":      `{"email":"not-an-email","password":"password123","username":"ava"}`,
		"invalid json":   `{"email":`,
	}

	for name, body := range cases {
		rec := f.do(t, http.MethodPost, "/api/auth/register", body, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestRegisterEndpointConflict(t *testing.T) {
	f := newRouterFixture(t)
	f.auth.err = usecase.ErrUserAlreadyExists

	body := `{"email":"a@example.com","password":"password123","username":"ava","first_name":"Ava","last_name":"Stone"}`
	rec := f.do(t, http.MethodPost, "/api/auth/register", body, "")

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	f := newRouterFixture(t)
	f.auth.err = usecase.ErrInvalidCredentials

	body := `{"email":"a@example.com","password":"wrong-password"}`
	rec := f.do(t, http.MethodPost, "/api/auth/login", body, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestOTPEndpointsRequireSession(t *testing.T) {
	f := newRouterFixture(t)

	if rec := f.do(t, http.MethodPost, "/api/auth/request-otp", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("request-otp without token: expected 401, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodPost, "/api/auth/verify-otp", `{"otp":"123456"}`, "Bearer garbage"); rec.Code != http.StatusUnauthorized {
		t.Errorf("verify-otp with bad token: expected 401, got %d", rec.Code)
	}
}

func TestRequestOTPRateLimitedStatus(t *testing.T) {
	f := newRouterFixture(t)
	f.otp.requestErr = usecase.ErrOTPRateLimited

	bearer := f.bearerFor(t, auth.SessionClaims{UserID: "user-1"})
	rec := f.do(t, http.MethodPost, "/api/auth/request-otp", "", bearer)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", rec.Code)
	}
}

func TestVerifyOTPEndpoint(t *testing.T) {
	f := newRouterFixture(t)
	bearer := f.bearerFor(t, auth.SessionClaims{UserID: "user-1"})

	rec := f.do(t, http.MethodPost, "/api/auth/verify-otp", `{"otp":"123456"}`, bearer)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "email verified") {
		t.Errorf("expected verified message, got %d: %s", rec.Code, rec.Body.String())
	}

	f.otp.alreadyVerified = true
	rec = f.do(t, http.MethodPost, "/api/auth/verify-otp", `{"otp":"123456"}`, bearer)
	if !strings.Contains(rec.Body.String(), "already verified") {
		t.Errorf("expected already verified message, got: %s", rec.Body.String())
	}

	f.otp.alreadyVerified = false
	f.otp.verifyErr = usecase.ErrOTPInvalidOrExpired
	rec = f.do(t, http.MethodPost, "/api/auth/verify-otp", `{"otp":"000000"}`, bearer)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad code: expected 400, got %d", rec.Code)
	}
}

func TestVerifyOTPEndpointValidatesShape(t *testing.T) {
	f := newRouterFixture(t)
	bearer := f.bearerFor(t, auth.SessionClaims{UserID: "user-1"})

	for _, body := range []string{`{"otp":"12345"}`, `{"otp":"abcdef"}`, `{}`} {
		rec := f.do(t, http.MethodPost, "/api/auth/verify-otp", body, bearer)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestMeEndpoint(t *testing.T) {
	f := newRouterFixture(t)
	bearer := f.bearerFor(t, auth.SessionClaims{UserID: "user-1"})

	rec := f.do(t, http.MethodGet, "/api/users/me", "", bearer)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "me@example.com") {
		t.Errorf("response should carry the profile: %s", rec.Body.String())
	}
}
