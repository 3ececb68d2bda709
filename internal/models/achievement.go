package models

import "time"

// Achievement records a badge earned by a profile. The badge engine
// guarantees at most one achievement per (profile, badge type) pair;
// storage does not enforce it.
type Achievement struct {
	ID         string    `json:"id"`
	ProfileID  string    `json:"profile_id"`
	BadgeType  BadgeType `json:"badge_type"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// Info returns the display metadata for the achievement's badge
func (a *Achievement) Info() BadgeInfo {
	return Badges[a.BadgeType]
}

// DifficultyUnlock records access to level 2 or 3 of a game, earned by
// a perfect-accuracy session at the preceding level. Level 1 is always
// available and never stored.
type DifficultyUnlock struct {
	ID         string    `json:"id"`
	ProfileID  string    `json:"profile_id"`
	GameType   GameType  `json:"game_type"`
	Level      int       `json:"level"`
	UnlockedAt time.Time `json:"unlocked_at"`
}
