package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mindgym/internal/models"
)

var (
	// ErrProfileNotFound is returned when the referenced profile does not exist
	ErrProfileNotFound = errors.New("profile not found")
	// ErrNameRequired is returned when a profile name is empty
	ErrNameRequired = errors.New("profile name is required")
	// ErrInvalidPIN is returned when a PIN check fails
	ErrInvalidPIN = errors.New("invalid PIN")
)

const defaultAvatar = "🧠"

// ProfileService handles profile lifecycle: creation, updates, PIN
// protection, deletion with cascade, and per-profile progress reset
type ProfileService struct {
	profiles     ProfileStore
	sessions     SessionStore
	achievements AchievementStore
	unlocks      UnlockStore
}

// NewProfileService creates a new profile service
func NewProfileService(profiles ProfileStore, sessions SessionStore, achievements AchievementStore, unlocks UnlockStore) *ProfileService {
	return &ProfileService{
		profiles:     profiles,
		sessions:     sessions,
		achievements: achievements,
		unlocks:      unlocks,
	}
}

// CreateProfile creates a new profile. The PIN is optional; when set it
// is stored as a bcrypt hash and required for token issuance.
func (s *ProfileService) CreateProfile(name, avatarEmoji, pin string) (*models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if avatarEmoji == "" {
		avatarEmoji = defaultAvatar
	}

	pinHash, err := hashPIN(pin)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &models.Profile{
		ID:          uuid.New().String(),
		Name:        name,
		AvatarEmoji: avatarEmoji,
		PINHash:     pinHash,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.profiles.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// ListProfiles returns all profiles, newest first
func (s *ProfileService) ListProfiles() ([]models.Profile, error) {
	return s.profiles.List()
}

// GetProfile fetches one profile
func (s *ProfileService) GetProfile(id string) (*models.Profile, error) {
	profile, err := s.profiles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpdateProfile changes a profile's display name and avatar
func (s *ProfileService) UpdateProfile(id, name, avatarEmoji string) (*models.Profile, error) {
	profile, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	profile.Name = name
	if avatarEmoji != "" {
		profile.AvatarEmoji = avatarEmoji
	}

	if err := s.profiles.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// SetPIN sets or clears a profile's PIN
func (s *ProfileService) SetPIN(id, pin string) error {
	profile, err := s.GetProfile(id)
	if err != nil {
		return err
	}

	pinHash, err := hashPIN(pin)
	if err != nil {
		return err
	}
	profile.PINHash = pinHash

	if err := s.profiles.Update(profile); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// Authenticate verifies a profile's PIN. Profiles without a PIN always
// authenticate.
func (s *ProfileService) Authenticate(id, pin string) (*models.Profile, error) {
	profile, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}

	if !profile.HasPIN() {
		return profile, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.PINHash), []byte(pin)) != nil {
		return nil, ErrInvalidPIN
	}
	return profile, nil
}

// DeleteProfile removes a profile and everything it owns
func (s *ProfileService) DeleteProfile(id string) error {
	if _, err := s.GetProfile(id); err != nil {
		return err
	}

	// Explicit child deletes first; foreign keys also cascade but this
	// keeps behavior uniform across engines
	if err := s.sessions.DeleteForProfile(id); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	if err := s.achievements.DeleteForProfile(id); err != nil {
		return fmt.Errorf("failed to delete achievements: %w", err)
	}
	if err := s.unlocks.DeleteForProfile(id); err != nil {
		return fmt.Errorf("failed to delete unlocks: %w", err)
	}
	if err := s.profiles.Delete(id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// ResetProgress clears a profile's sessions and difficulty unlocks.
// Earned badges are kept.
func (s *ProfileService) ResetProgress(id string) error {
	if _, err := s.GetProfile(id); err != nil {
		return err
	}

	if err := s.sessions.DeleteForProfile(id); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	if err := s.unlocks.DeleteForProfile(id); err != nil {
		return fmt.Errorf("failed to delete unlocks: %w", err)
	}
	return nil
}

func hashPIN(pin string) (string, error) {
	if pin == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hash), nil
}
