package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saranyu/jobboard-api/internal/validation"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeAndValidate decodes the request body into v and runs payload
// validation, writing the 400 response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validation.Validator, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json body")
		return false
	}

	if err := validate.Struct(v); err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Message)
		} else {
			respondError(w, http.StatusBadRequest, "invalid request payload")
		}
		return false
	}

	return true
}
