package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/saranyu/jobboard-api/internal/middleware"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/usecase"
	"github.com/saranyu/jobboard-api/internal/validation"
)

type ApplicationHandler struct {
	applicationUsecase usecase.ApplicationUsecase
	validate           *validation.Validator
	logger             *zerolog.Logger
}

func NewApplicationHandler(applicationUsecase usecase.ApplicationUsecase, validate *validation.Validator, logger *zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUsecase: applicationUsecase,
		validate:           validate,
		logger:             logger,
	}
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req payload.ApplyRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	application, err := h.applicationUsecase.Apply(r.Context(), claims, chi.URLParam(r, "id"), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound):
			respondError(w, http.StatusNotFound, "job not found")
		case errors.Is(err, usecase.ErrJobNotOpen):
			respondError(w, http.StatusConflict, "job is not open for applications")
		case errors.Is(err, usecase.ErrAlreadyApplied):
			respondError(w, http.StatusConflict, "you have already applied to this job")
		case errors.Is(err, usecase.ErrMissingAnswers):
			respondError(w, http.StatusBadRequest, "all required screening questions must be answered")
		default:
			h.logger.Error().Err(err).Msg("failed to submit application")
			respondError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"application": application})
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	applications, err := h.applicationUsecase.ListMyApplications(r.Context(), claims)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list applications")
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"applications": applications})
}

func (h *ApplicationHandler) ListForJob(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	applications, err := h.applicationUsecase.ListJobApplications(r.Context(), claims, chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound):
			respondError(w, http.StatusNotFound, "job not found")
		case errors.Is(err, usecase.ErrNotCompanyAdmin):
			respondError(w, http.StatusForbidden, "you do not manage this company")
		default:
			h.logger.Error().Err(err).Msg("failed to list job applications")
			respondError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"applications": applications})
}
