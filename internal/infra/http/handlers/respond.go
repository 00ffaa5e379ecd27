package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/rafaelmtz/leadtracker/internal/entity"
	"github.com/rafaelmtz/leadtracker/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps domain errors to status codes. Anything unrecognized is
// a storage or programming failure and answers an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsValidationError(err),
		errors.Is(err, entity.ErrNameRequired),
		errors.Is(err, entity.ErrEmailRequired),
		errors.Is(err, entity.ErrLeadAlreadyConverted),
		errors.Is(err, entity.ErrDuplicateConversion):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrLeadNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrEmailAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		log.Printf("unhandled error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
