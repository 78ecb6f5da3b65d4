package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"estatehub/internal/repository"
	"estatehub/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps the service error taxonomy onto HTTP statuses.
// Authorization and the conflated not-found/not-yours case have fixed
// statuses; everything else is an upstream failure surfaced verbatim.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		WriteError(w, service.ErrUnauthorized.Error(), http.StatusForbidden)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
