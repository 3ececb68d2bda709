package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mindgym/internal/analytics"
	"mindgym/internal/models"
)

var (
	// ErrUnknownGameType is returned for game types outside the catalog
	ErrUnknownGameType = errors.New("unknown game type")
	// ErrInvalidLevel is returned for levels outside 1..3
	ErrInvalidLevel = errors.New("level must be between 1 and 3")
	// ErrInvalidScore is returned for negative scores or max scores
	ErrInvalidScore = errors.New("score and max score must not be negative")
)

// SessionInput describes one completed game round
type SessionInput struct {
	GameType         models.GameType `json:"game_type"`
	Score            int             `json:"score"`
	MaxPossibleScore int             `json:"max_possible_score"`
	Level            int             `json:"level"`
	DurationSeconds  int             `json:"duration_seconds"`
	CompletedAt      time.Time       `json:"completed_at"`
}

// SessionResult is everything derived from recording one session
type SessionResult struct {
	Session       models.GameSession       `json:"session"`
	Accuracy      float64                  `json:"accuracy"`
	NewBadges     []models.BadgeInfo       `json:"new_badges"`
	UnlockedLevel int                      `json:"unlocked_level,omitempty"`
	Statistics    analytics.GameStatistics `json:"statistics"`
}

// ProfileSummary aggregates a profile's standing across all games
type ProfileSummary struct {
	TotalGamesPlayed int                           `json:"total_games_played"`
	CurrentStreak    int                           `json:"current_streak"`
	PerGame          []analytics.GameStatistics    `json:"per_game"`
	Bracket          analytics.PerformanceBracket  `json:"bracket"`
	UnlockedLevels   map[models.GameType]int       `json:"unlocked_levels"`
}

// GameService records completed sessions and derives their
// consequences: statistics, badge awards and difficulty unlocks
type GameService struct {
	sessions SessionStore
	unlocks  UnlockStore
	badges   *BadgeService
	now      func() time.Time
}

// NewGameService creates a new game service
func NewGameService(sessions SessionStore, unlocks UnlockStore, badges *BadgeService) *GameService {
	return &GameService{
		sessions: sessions,
		unlocks:  unlocks,
		badges:   badges,
		now:      time.Now,
	}
}

// RecordSession persists one completed round and runs the badge check
// and difficulty unlock gate against it. The returned result carries
// everything a client needs to render the round-complete screen.
func (s *GameService) RecordSession(profileID string, input SessionInput) (*SessionResult, error) {
	if !input.GameType.IsValid() {
		return nil, ErrUnknownGameType
	}
	if input.Level < 1 || input.Level > models.MaxLevel {
		return nil, ErrInvalidLevel
	}
	if input.Score < 0 || input.MaxPossibleScore < 0 {
		return nil, ErrInvalidScore
	}

	completedAt := input.CompletedAt
	if completedAt.IsZero() {
		completedAt = s.now()
	}

	session := models.GameSession{
		ID:               uuid.New().String(),
		ProfileID:        profileID,
		GameType:         input.GameType,
		Score:            input.Score,
		MaxPossibleScore: input.MaxPossibleScore,
		Level:            input.Level,
		CompletedAt:      completedAt,
		DurationSeconds:  input.DurationSeconds,
	}

	if err := s.sessions.Insert(session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	history, err := s.sessions.ForProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	newBadges, err := s.badges.CheckAfterSession(profileID, session, history)
	if err != nil {
		return nil, err
	}

	unlockedLevel, err := s.evaluateUnlock(session)
	if err != nil {
		return nil, err
	}

	result := &SessionResult{
		Session:       session,
		Accuracy:      session.Accuracy(),
		NewBadges:     []models.BadgeInfo{},
		UnlockedLevel: unlockedLevel,
		Statistics:    analytics.ComputeStatistics(history, session.GameType),
	}
	for _, a := range newBadges {
		result.NewBadges = append(result.NewBadges, a.Info())
	}

	return result, nil
}

// evaluateUnlock applies the difficulty unlock gate to a just-completed
// session. Returns the newly unlocked level, or 0 when nothing unlocks.
func (s *GameService) evaluateUnlock(session models.GameSession) (int, error) {
	if session.Accuracy() < 100 {
		return 0, nil
	}
	if session.Level >= models.MaxLevel {
		return 0, nil
	}

	nextLevel := session.Level + 1

	maxUnlocked, err := s.unlocks.MaxUnlockedLevel(session.ProfileID, session.GameType)
	if err != nil {
		return 0, fmt.Errorf("failed to check unlocked level: %w", err)
	}
	if maxUnlocked >= nextLevel {
		return 0, nil
	}

	unlock := models.DifficultyUnlock{
		ID:         uuid.New().String(),
		ProfileID:  session.ProfileID,
		GameType:   session.GameType,
		Level:      nextLevel,
		UnlockedAt: s.now(),
	}
	if err := s.unlocks.Insert(unlock); err != nil {
		return 0, fmt.Errorf("failed to save unlock: %w", err)
	}

	return nextLevel, nil
}

// Sessions returns a profile's session history, optionally filtered by
// game type and capped at limit (0 means no cap)
func (s *GameService) Sessions(profileID string, gameType models.GameType, limit int) ([]models.GameSession, error) {
	var (
		sessions []models.GameSession
		err      error
	)
	if gameType != "" {
		if !gameType.IsValid() {
			return nil, ErrUnknownGameType
		}
		sessions, err = s.sessions.ForProfileAndGame(profileID, gameType)
	} else {
		sessions, err = s.sessions.ForProfile(profileID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// Statistics computes one game's statistics for a profile
func (s *GameService) Statistics(profileID string, gameType models.GameType) (analytics.GameStatistics, error) {
	if !gameType.IsValid() {
		return analytics.GameStatistics{}, ErrUnknownGameType
	}

	history, err := s.sessions.ForProfile(profileID)
	if err != nil {
		return analytics.GameStatistics{}, fmt.Errorf("failed to load sessions: %w", err)
	}

	return analytics.ComputeStatistics(history, gameType), nil
}

// Summary derives a profile's standing across every game: per-game
// statistics, total games, current streak, performance bracket and
// unlocked difficulty levels
func (s *GameService) Summary(profileID string) (*ProfileSummary, error) {
	history, err := s.sessions.ForProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	summary := &ProfileSummary{
		TotalGamesPlayed: len(history),
		CurrentStreak:    analytics.CurrentStreak(history, s.now()),
	}

	var percentileSum, played int
	for _, category := range models.GameCategories {
		for _, gameType := range models.GamesInCategory(category.Category) {
			stats := analytics.ComputeStatistics(history, gameType)
			summary.PerGame = append(summary.PerGame, stats)
			if stats.TotalGamesPlayed > 0 {
				percentileSum += stats.Percentile
				played++
			}
		}
	}

	// Overall bracket from the mean percentile of games actually played
	overall := 50
	if played > 0 {
		overall = percentileSum / played
	}
	summary.Bracket = analytics.BracketForPercentile(overall)

	summary.UnlockedLevels, err = s.UnlockedLevels(profileID)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// UnlockedLevels returns the highest unlocked difficulty level per game
// type, defaulting to 1 everywhere
func (s *GameService) UnlockedLevels(profileID string) (map[models.GameType]int, error) {
	levels := make(map[models.GameType]int, len(models.Games))
	for gameType := range models.Games {
		levels[gameType] = 1
	}

	unlocks, err := s.unlocks.ForProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocks: %w", err)
	}
	for _, u := range unlocks {
		if u.Level > levels[u.GameType] {
			levels[u.GameType] = u.Level
		}
	}
	return levels, nil
}
