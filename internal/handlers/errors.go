package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mindgym/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg string, err error) {
	if err != nil {
		log.Printf("%s: %v", userMsg, err)
	}

	respondJSON(w, status, map[string]string{"error": userMsg})
}

// respondServiceError maps known service errors to HTTP statuses;
// anything unrecognized is a storage failure (500)
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		respondWithError(w, http.StatusNotFound, "profile not found", nil)
	case errors.Is(err, service.ErrNameRequired):
		respondWithError(w, http.StatusBadRequest, "profile name is required", nil)
	case errors.Is(err, service.ErrInvalidPIN):
		respondWithError(w, http.StatusUnauthorized, "invalid PIN", nil)
	case errors.Is(err, service.ErrUnknownGameType):
		respondWithError(w, http.StatusBadRequest, "unknown game type", nil)
	case errors.Is(err, service.ErrInvalidLevel):
		respondWithError(w, http.StatusBadRequest, "level must be between 1 and 3", nil)
	case errors.Is(err, service.ErrInvalidScore):
		respondWithError(w, http.StatusBadRequest, "score and max score must not be negative", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error", err)
	}
}
