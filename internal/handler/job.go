package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/saranyu/jobboard-api/internal/middleware"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/repository"
	"github.com/saranyu/jobboard-api/internal/usecase"
	"github.com/saranyu/jobboard-api/internal/validation"
)

type JobHandler struct {
	jobUsecase usecase.JobUsecase
	validate   *validation.Validator
	logger     *zerolog.Logger
}

func NewJobHandler(jobUsecase usecase.JobUsecase, validate *validation.Validator, logger *zerolog.Logger) *JobHandler {
	return &JobHandler{
		jobUsecase: jobUsecase,
		validate:   validate,
		logger:     logger,
	}
}

func (h *JobHandler) CreateForCompany(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req payload.CreateJobRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	job, err := h.jobUsecase.CreateJob(r.Context(), claims, chi.URLParam(r, "companyId"), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotCompanyAdmin):
			respondError(w, http.StatusForbidden, "you do not manage this company")
		case errors.Is(err, usecase.ErrCompanyNotFound):
			respondError(w, http.StatusNotFound, "company not found")
		case errors.Is(err, usecase.ErrInvalidTagRef):
			respondError(w, http.StatusBadRequest, "invalid tag reference")
		case errors.Is(err, usecase.ErrLookupNotFound):
			respondError(w, http.StatusBadRequest, "referenced tag does not exist")
		default:
			h.logger.Error().Err(err).Msg("failed to create job")
			respondError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"job": job})
}

func (h *JobHandler) ListForCompany(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	jobs, err := h.jobUsecase.ListCompanyJobs(r.Context(), claims, chi.URLParam(r, "companyId"), filterParams(r))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotCompanyAdmin):
			respondError(w, http.StatusForbidden, "you do not manage this company")
		case errors.Is(err, usecase.ErrCompanyNotFound):
			respondError(w, http.StatusNotFound, "company not found")
		default:
			h.logger.Error().Err(err).Msg("failed to list company jobs")
			respondError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobUsecase.GetJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			respondError(w, http.StatusNotFound, "job not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to get job")
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"job": job})
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req payload.UpdateJobRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	job, err := h.jobUsecase.UpdateJob(r.Context(), claims, chi.URLParam(r, "id"), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound):
			respondError(w, http.StatusNotFound, "job not found")
		case errors.Is(err, usecase.ErrNotCompanyAdmin):
			respondError(w, http.StatusForbidden, "you do not manage this company")
		case errors.Is(err, usecase.ErrInvalidTagRef):
			respondError(w, http.StatusBadRequest, "invalid tag reference")
		case errors.Is(err, usecase.ErrLookupNotFound):
			respondError(w, http.StatusBadRequest, "referenced tag does not exist")
		case errors.Is(err, usecase.ErrInvalidSalaryRange):
			respondError(w, http.StatusBadRequest, "salary_max must not be below salary_min")
		case errors.Is(err, repository.ErrNoFieldsToUpdate):
			respondError(w, http.StatusBadRequest, "no fields to update")
		default:
			h.logger.Error().Err(err).Msg("failed to update job")
			respondError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"job": job})
}

func (h *JobHandler) Browse(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobUsecase.BrowseJobs(r.Context(), filterParams(r))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to browse jobs")
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

func filterParams(r *http.Request) repository.FilterJobsParams {
	params := repository.FilterJobsParams{}

	if search := r.URL.Query().Get("q"); search != "" {
		params.Search = &search
	}
	if status := r.URL.Query().Get("status"); status != "" {
		params.Status = &status
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		params.Limit, _ = strconv.ParseUint(raw, 10, 64)
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		params.Offset, _ = strconv.ParseUint(raw, 10, 64)
	}

	return params
}
