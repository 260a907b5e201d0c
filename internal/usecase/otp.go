package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/saranyu/jobboard-api/internal/mailer"
	"github.com/saranyu/jobboard-api/internal/queue"
	"github.com/saranyu/jobboard-api/internal/ratelimit"
	"github.com/saranyu/jobboard-api/internal/repository"
	"github.com/saranyu/jobboard-api/internal/security"
)

// OTPUsecase defines the business logic for email verification codes.
type OTPUsecase interface {
	// RequestOTP issues a fresh code for the user and mails the plaintext.
	// A re-request overwrites any pending code; only the latest one
	// verifies.
	RequestOTP(ctx context.Context, userID string) error

	// VerifyOTP checks a submitted code. If the user is already verified
	// it reports alreadyVerified without mutating anything.
	VerifyOTP(ctx context.Context, userID, code string) (alreadyVerified bool, err error)
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrOTPInvalidOrExpired = errors.New("verification code is invalid or has expired")
	ErrOTPRateLimited      = errors.New("too many verification code requests")
)

type otpUsecase struct {
	userRepo     repository.UserRepository
	sender       mailer.Sender
	limiter      ratelimit.Limiter
	events       queue.Publisher
	otpExpiresIn time.Duration
	logger       *zerolog.Logger
}

// NewOTPUsecase creates a new instance of OTPUsecase.
func NewOTPUsecase(
	userRepo repository.UserRepository,
	sender mailer.Sender,
	limiter ratelimit.Limiter,
	events queue.Publisher,
	otpExpiresIn time.Duration,
	logger *zerolog.Logger,
) OTPUsecase {
	return &otpUsecase{
		userRepo:     userRepo,
		sender:       sender,
		limiter:      limiter,
		events:       events,
		otpExpiresIn: otpExpiresIn,
		logger:       logger,
	}
}

func (u *otpUsecase) RequestOTP(ctx context.Context, userID string) error {
	allowed, err := u.limiter.Allow(ctx, "otp:"+userID)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrOTPRateLimited
	}

	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}

	code, err := security.GenerateOTP()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(u.otpExpiresIn)
	if err := u.userRepo.SetOTP(ctx, userID, security.HashOTP(code), expiresAt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}

	return u.sender.SendOTP(user.Email, code, u.otpExpiresIn)
}

func (u *otpUsecase) VerifyOTP(ctx context.Context, userID, code string) (bool, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	// Verification is idempotent: a repeat with any code after success is
	// answered without touching the document.
	if user.EmailVerified != nil {
		return true, nil
	}

	if user.OTP == "" || user.OTPExpiresAt == nil {
		return false, ErrOTPInvalidOrExpired
	}
	if time.Now().After(*user.OTPExpiresAt) {
		return false, ErrOTPInvalidOrExpired
	}

	digest := security.HashOTP(code)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(user.OTP)) != 1 {
		return false, ErrOTPInvalidOrExpired
	}

	if err := u.userRepo.MarkEmailVerified(ctx, userID, time.Now()); err != nil {
		return false, err
	}

	if err := u.events.Publish(ctx, queue.KeyUserVerified, queue.UserVerified{
		UserID: user.ID.Hex(),
		Email:  user.Email,
	}); err != nil {
		u.logger.Error().Err(err).Msg("failed to publish user.verified event")
	}

	return false, nil
}
