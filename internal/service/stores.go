package service

import "mindgym/internal/models"

// The store interfaces describe the persistence capabilities the
// services need. The repository package provides the SQL-backed
// implementations; tests substitute in-memory fakes.

// ProfileStore persists player profiles
type ProfileStore interface {
	Create(profile *models.Profile) error
	GetByID(id string) (*models.Profile, error)
	List() ([]models.Profile, error)
	Update(profile *models.Profile) error
	Delete(id string) error
}

// SessionStore persists completed game sessions
type SessionStore interface {
	Insert(session models.GameSession) error
	ForProfile(profileID string) ([]models.GameSession, error)
	ForProfileAndGame(profileID string, gameType models.GameType) ([]models.GameSession, error)
	DeleteForProfile(profileID string) error
}

// AchievementStore persists earned badges
type AchievementStore interface {
	Insert(achievement models.Achievement) error
	ForProfile(profileID string) ([]models.Achievement, error)
	DeleteForProfile(profileID string) error
}

// UnlockStore persists difficulty unlocks
type UnlockStore interface {
	Insert(unlock models.DifficultyUnlock) error
	ForProfile(profileID string) ([]models.DifficultyUnlock, error)
	MaxUnlockedLevel(profileID string, gameType models.GameType) (int, error)
	DeleteForProfile(profileID string) error
}
