package handlers

import (
	"net/http"

	"mindgym/internal/models"
	"mindgym/internal/service"
)

// StatsHandler serves statistics endpoints
type StatsHandler struct {
	games *service.GameService
}

// NewStatsHandler creates a new statistics handler
func NewStatsHandler(games *service.GameService) *StatsHandler {
	return &StatsHandler{games: games}
}

// Summary handles GET /api/profiles/{id}/stats
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.games.Summary(r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// ForGame handles GET /api/profiles/{id}/stats/{gameType}
func (h *StatsHandler) ForGame(w http.ResponseWriter, r *http.Request) {
	gameType := models.GameType(r.PathValue("gameType"))
	if !gameType.IsValid() {
		respondWithError(w, http.StatusBadRequest, "unknown game type", nil)
		return
	}

	stats, err := h.games.Statistics(r.PathValue("id"), gameType)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// Unlocks handles GET /api/profiles/{id}/unlocks
func (h *StatsHandler) Unlocks(w http.ResponseWriter, r *http.Request) {
	levels, err := h.games.UnlockedLevels(r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, levels)
}
