package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/saranyu/jobboard-api/internal/middleware"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/repository"
	"github.com/saranyu/jobboard-api/internal/usecase"
	"github.com/saranyu/jobboard-api/internal/validation"
)

type CompanyHandler struct {
	companyUsecase usecase.CompanyUsecase
	validate       *validation.Validator
	logger         *zerolog.Logger
}

func NewCompanyHandler(companyUsecase usecase.CompanyUsecase, validate *validation.Validator, logger *zerolog.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyUsecase: companyUsecase,
		validate:       validate,
		logger:         logger,
	}
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req payload.CreateCompanyRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	company, err := h.companyUsecase.CreateCompany(r.Context(), claims, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTooManyIndustries):
			respondError(w, http.StatusBadRequest, "a company can list at most 3 industries")
		case errors.Is(err, usecase.ErrInvalidTagRef):
			respondError(w, http.StatusBadRequest, "invalid tag reference")
		case errors.Is(err, usecase.ErrLookupNotFound):
			respondError(w, http.StatusBadRequest, "referenced tag does not exist")
		default:
			h.logger.Error().Err(err).Msg("failed to create company")
			respondError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"company": company})
}

func (h *CompanyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	company, err := h.companyUsecase.GetCompany(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrCompanyNotFound) {
			respondError(w, http.StatusNotFound, "company not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to get company")
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"company": company})
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req payload.UpdateCompanyRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	company, err := h.companyUsecase.UpdateCompany(r.Context(), claims, chi.URLParam(r, "id"), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotCompanyAdmin):
			respondError(w, http.StatusForbidden, "you do not manage this company")
		case errors.Is(err, usecase.ErrCompanyNotFound):
			respondError(w, http.StatusNotFound, "company not found")
		case errors.Is(err, usecase.ErrTooManyIndustries):
			respondError(w, http.StatusBadRequest, "a company can list at most 3 industries")
		case errors.Is(err, usecase.ErrInvalidTagRef):
			respondError(w, http.StatusBadRequest, "invalid tag reference")
		case errors.Is(err, usecase.ErrLookupNotFound):
			respondError(w, http.StatusBadRequest, "referenced tag does not exist")
		case errors.Is(err, repository.ErrNoFieldsToUpdate):
			respondError(w, http.StatusBadRequest, "no fields to update")
		default:
			h.logger.Error().Err(err).Msg("failed to update company")
			respondError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"company": company})
}

func (h *CompanyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	companies, err := h.companyUsecase.ListMyCompanies(r.Context(), claims)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list companies")
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"companies": companies})
}
