package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mindgym/internal/models"
	"mindgym/internal/service"
)

// SessionHandler serves game session endpoints
type SessionHandler struct {
	games *service.GameService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(games *service.GameService) *SessionHandler {
	return &SessionHandler{games: games}
}

// Create handles POST /api/profiles/{id}/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.SessionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := h.games.RecordSession(r.PathValue("id"), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// List handles GET /api/profiles/{id}/sessions. Optional query
// parameters: game_type filters to one game, limit caps the count.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	gameType := models.GameType(r.URL.Query().Get("game_type"))
	if gameType != "" && !gameType.IsValid() {
		respondWithError(w, http.StatusBadRequest, "unknown game type", nil)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer", nil)
			return
		}
		limit = n
	}

	sessions, err := h.games.Sessions(r.PathValue("id"), gameType, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if sessions == nil {
		sessions = []models.GameSession{}
	}

	respondJSON(w, http.StatusOK, sessions)
}
