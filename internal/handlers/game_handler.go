package handlers

import (
	"net/http"

	"mindgym/internal/models"
)

// GameHandler serves the static game catalog.
type GameHandler struct{}

// NewGameHandler creates a new game handler
func NewGameHandler() *GameHandler {
	return &GameHandler{}
}

type catalogCategory struct {
	Category models.GameCategoryInfo `json:"category"`
	Games    []models.GameInfo       `json:"games"`
}

// List handles GET /api/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	catalog := make([]catalogCategory, 0, len(models.GameCategories))
	for _, cat := range models.GameCategories {
		games := make([]models.GameInfo, 0, 3)
		for _, gt := range models.GamesInCategory(cat.Category) {
			games = append(games, models.Games[gt])
		}
		catalog = append(catalog, catalogCategory{
			Category: cat,
			Games:    games,
		})
	}

	respondJSON(w, http.StatusOK, catalog)
}

// Health handles GET /healthz
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
