package handlers

import (
	"encoding/json"
	"net/http"

	"mindgym/internal/models"
	"mindgym/internal/security"
	"mindgym/internal/service"
)

// ProfileHandler serves profile lifecycle endpoints
type ProfileHandler struct {
	profiles *service.ProfileService
	tokens   *security.TokenIssuer
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService, tokens *security.TokenIssuer) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, tokens: tokens}
}

type profileRequest struct {
	Name        string `json:"name"`
	AvatarEmoji string `json:"avatar_emoji"`
	PIN         string `json:"pin"`
}

// Create handles POST /api/profiles
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	profile, err := h.profiles.CreateProfile(req.Name, req.AvatarEmoji, req.PIN)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, profile)
}

// List handles GET /api/profiles
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.ListProfiles()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	respondJSON(w, http.StatusOK, profiles)
}

// Get handles GET /api/profiles/{id}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetProfile(r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// Update handles PUT /api/profiles/{id}
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	profile, err := h.profiles.UpdateProfile(r.PathValue("id"), req.Name, req.AvatarEmoji)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// Delete handles DELETE /api/profiles/{id}
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.DeleteProfile(r.PathValue("id")); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Token handles POST /api/profiles/{id}/token. Profiles with a PIN must
// present it.
func (h *ProfileHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PIN string `json:"pin"`
	}
	// An empty body is fine for profiles without a PIN
	_ = json.NewDecoder(r.Body).Decode(&req)

	profile, err := h.profiles.Authenticate(r.PathValue("id"), req.PIN)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	token, err := h.tokens.Issue(profile.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to issue token", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// SetPIN handles PUT /api/profiles/{id}/pin. An empty PIN clears the
// protection.
func (h *ProfileHandler) SetPIN(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := h.profiles.SetPIN(r.PathValue("id"), req.PIN); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reset handles POST /api/profiles/{id}/reset. Sessions and difficulty
// unlocks are cleared; earned badges stay.
func (h *ProfileHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.ResetProgress(r.PathValue("id")); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
