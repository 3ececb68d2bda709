package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"mindgym/internal/badges"
	"mindgym/internal/models"
)

// BadgeService evaluates badge rules against a profile's history and
// persists newly earned achievements
type BadgeService struct {
	sessions     SessionStore
	achievements AchievementStore
	now          func() time.Time
}

// NewBadgeService creates a new badge service
func NewBadgeService(sessions SessionStore, achievements AchievementStore) *BadgeService {
	return &BadgeService{
		sessions:     sessions,
		achievements: achievements,
		now:          time.Now,
	}
}

// CheckAfterSession runs the incremental badge check for one newly
// completed session (already present in history) and persists any new
// awards
func (s *BadgeService) CheckAfterSession(profileID string, session models.GameSession, history []models.GameSession) ([]models.Achievement, error) {
	existing, err := s.existingBadgeTypes(profileID)
	if err != nil {
		return nil, err
	}

	earned := badges.CheckAfterSession(session, history, existing, s.now())
	return s.award(profileID, earned)
}

// Resync re-evaluates every badge rule against the profile's full
// history, awarding anything missing. Used after data imports.
func (s *BadgeService) Resync(profileID string) ([]models.Achievement, error) {
	history, err := s.sessions.ForProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	existing, err := s.existingBadgeTypes(profileID)
	if err != nil {
		return nil, err
	}

	earned := badges.Resync(history, existing, s.now())
	return s.award(profileID, earned)
}

// List returns a profile's earned achievements together with progress
// toward milestone and streak badges
func (s *BadgeService) List(profileID string) ([]models.Achievement, map[models.BadgeType]float64, error) {
	earned, err := s.achievements.ForProfile(profileID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load achievements: %w", err)
	}

	history, err := s.sessions.ForProfile(profileID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	return earned, badges.Progress(history, s.now()), nil
}

func (s *BadgeService) existingBadgeTypes(profileID string) ([]models.BadgeType, error) {
	achievements, err := s.achievements.ForProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}

	types := make([]models.BadgeType, 0, len(achievements))
	for _, a := range achievements {
		types = append(types, a.BadgeType)
	}
	return types, nil
}

func (s *BadgeService) award(profileID string, earned []models.BadgeType) ([]models.Achievement, error) {
	var awarded []models.Achievement
	for _, badgeType := range earned {
		achievement := models.Achievement{
			ID:         uuid.New().String(),
			ProfileID:  profileID,
			BadgeType:  badgeType,
			UnlockedAt: s.now(),
		}
		if err := s.achievements.Insert(achievement); err != nil {
			return awarded, fmt.Errorf("failed to award badge %s: %w", badgeType, err)
		}
		awarded = append(awarded, achievement)
	}
	return awarded, nil
}
