package models

import "time"

// GameSession is an immutable record of one completed game round
type GameSession struct {
	ID               string    `json:"id"`
	ProfileID        string    `json:"profile_id"`
	GameType         GameType  `json:"game_type"`
	Score            int       `json:"score"`
	MaxPossibleScore int       `json:"max_possible_score"`
	Level            int       `json:"level"`
	CompletedAt      time.Time `json:"completed_at"`
	DurationSeconds  int       `json:"duration_seconds"`
}

// Accuracy returns the session score normalized to a 0-100 scale.
// Scores above the maximum clamp to 100; a zero or negative maximum
// yields 0 rather than dividing by zero.
func (s *GameSession) Accuracy() float64 {
	if s.MaxPossibleScore <= 0 {
		return 0
	}
	accuracy := float64(s.Score) / float64(s.MaxPossibleScore) * 100
	if accuracy > 100 {
		return 100
	}
	return accuracy
}
