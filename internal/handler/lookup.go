package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/saranyu/jobboard-api/internal/model"
	"github.com/saranyu/jobboard-api/internal/payload"
	"github.com/saranyu/jobboard-api/internal/usecase"
	"github.com/saranyu/jobboard-api/internal/validation"
)

// LookupHandler serves the shared lookup entity collections behind the
// autocomplete flow.
type LookupHandler struct {
	lookupUsecase usecase.LookupUsecase
	validate      *validation.Validator
	logger        *zerolog.Logger
}

func NewLookupHandler(lookupUsecase usecase.LookupUsecase, validate *validation.Validator, logger *zerolog.Logger) *LookupHandler {
	return &LookupHandler{
		lookupUsecase: lookupUsecase,
		validate:      validate,
		logger:        logger,
	}
}

func (h *LookupHandler) Search(w http.ResponseWriter, r *http.Request) {
	kind := model.LookupKind(chi.URLParam(r, "kind"))

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.ParseInt(raw, 10, 64)
	}

	items, err := h.lookupUsecase.Search(r.Context(), kind, r.URL.Query().Get("q"), limit)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidLookupKind) {
			respondError(w, http.StatusNotFound, "unknown lookup kind")
			return
		}

		h.logger.Error().Err(err).Msg("failed to search lookup entities")
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *LookupHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind := model.LookupKind(chi.URLParam(r, "kind"))

	var req payload.CreateLookupRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	item, err := h.lookupUsecase.CreateOrGet(r.Context(), kind, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidLookupKind) {
			respondError(w, http.StatusNotFound, "unknown lookup kind")
			return
		}

		h.logger.Error().Err(err).Msg("failed to create lookup entity")
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"item": item})
}
