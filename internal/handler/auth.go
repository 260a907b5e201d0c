package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/saranyu/jobboard-api/internal/middleware"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/usecase"
	"github.com/saranyu/jobboard-api/internal/validation"
)

// AuthHandler serves registration, login and email verification.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	otpUsecase  usecase.OTPUsecase
	validate    *validation.Validator
	logger      *zerolog.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	otpUsecase usecase.OTPUsecase,
	validate *validation.Validator,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		otpUsecase:  otpUsecase,
		validate:    validate,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	token, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Email:     req.Email,
		Password:  req.Password,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			respondError(w, http.StatusConflict, "email already registered")
			return
		}

		h.logger.Error().Err(err).Msg("failed to register user")
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondJSON(w, http.StatusCreated, payload.TokenResponse{Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	token, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		h.logger.Error().Err(err).Msg("failed to log in user")
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, payload.TokenResponse{Token: token})
}

func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req payload.GoogleLoginRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	token, err := h.authUsecase.GoogleLogin(r.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidIDToken) {
			respondError(w, http.StatusUnauthorized, "invalid google id token")
			return
		}

		h.logger.Error().Err(err).Msg("failed to log in with google")
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, payload.TokenResponse{Token: token})
}

func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing session")
		return
	}

	err := h.otpUsecase.RequestOTP(r.Context(), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, usecase.ErrOTPRateLimited):
			respondError(w, http.StatusTooManyRequests, "too many verification code requests")
		default:
			h.logger.Error().Err(err).Msg("failed to request verification code")
			respondError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	respondJSON(w, http.StatusOK, payload.MessageResponse{Message: "verification code sent"})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing session")
		return
	}

	var req payload.VerifyOTPRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	alreadyVerified, err := h.otpUsecase.VerifyOTP(r.Context(), claims.UserID, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, usecase.ErrOTPInvalidOrExpired):
			respondError(w, http.StatusBadRequest, "verification code is invalid or has expired")
		default:
			h.logger.Error().Err(err).Msg("failed to verify code")
			respondError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	if alreadyVerified {
		respondJSON(w, http.StatusOK, payload.MessageResponse{Message: "email already verified"})
		return
	}

	respondJSON(w, http.StatusOK, payload.MessageResponse{Message: "email verified"})
}
