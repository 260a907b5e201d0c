package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/saranyu/jobboard-api/internal/middleware"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/repository"
	"github.com/saranyu/jobboard-api/internal/usecase"
	"github.com/saranyu/jobboard-api/internal/validation"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	validate    *validation.Validator
	logger      *zerolog.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, validate *validation.Validator, logger *zerolog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validate:    validate,
		logger:      logger,
	}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing session")
		return
	}

	user, err := h.userUsecase.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to get user profile")
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing session")
		return
	}

	var req payload.UpdateProfileRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	user, err := h.userUsecase.UpdateProfile(r.Context(), claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, usecase.ErrLookupNotFound), errors.Is(err, usecase.ErrInvalidTagRef):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrNoFieldsToUpdate):
			respondError(w, http.StatusBadRequest, "no fields to update")
		default:
			h.logger.Error().Err(err).Msg("failed to update user profile")
			respondError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"user": user})
}
