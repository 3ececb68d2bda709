package handlers

import (
	"net/http"

	"mindgym/internal/models"
	"mindgym/internal/service"
)

// BadgeHandler serves badge endpoints
type BadgeHandler struct {
	badges *service.BadgeService
}

// NewBadgeHandler creates a new badge handler
func NewBadgeHandler(badges *service.BadgeService) *BadgeHandler {
	return &BadgeHandler{badges: badges}
}

type badgeResponse struct {
	Earned   []models.Achievement                  `json:"earned"`
	Progress map[models.BadgeType]float64          `json:"progress"`
	Catalog  map[models.BadgeType]models.BadgeInfo `json:"catalog"`
}

// List handles GET /api/profiles/{id}/badges
func (h *BadgeHandler) List(w http.ResponseWriter, r *http.Request) {
	earned, progress, err := h.badges.List(r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if earned == nil {
		earned = []models.Achievement{}
	}

	respondJSON(w, http.StatusOK, badgeResponse{
		Earned:   earned,
		Progress: progress,
		Catalog:  models.Badges,
	})
}

// Resync handles POST /api/profiles/{id}/badges/resync. It replays the
// full session history and awards anything missing.
func (h *BadgeHandler) Resync(w http.ResponseWriter, r *http.Request) {
	awarded, err := h.badges.Resync(r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if awarded == nil {
		awarded = []models.Achievement{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"awarded": awarded})
}
