package repository

import (
	"mindgym/internal/database"
	"mindgym/internal/models"
)

// SessionRepository handles game session database operations
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Insert stores a completed game session. Sessions are immutable; there
// is no update path.
func (r *SessionRepository) Insert(session models.GameSession) error {
	query := `
		INSERT INTO game_sessions (id, profile_id, game_type, score, max_possible_score, level, completed_at, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		session.ID,
		session.ProfileID,
		session.GameType,
		session.Score,
		session.MaxPossibleScore,
		session.Level,
		session.CompletedAt,
		session.DurationSeconds,
	)
	return err
}

// ForProfile retrieves all sessions for a profile, newest first
func (r *SessionRepository) ForProfile(profileID string) ([]models.GameSession, error) {
	query := `
		SELECT id, profile_id, game_type, score, max_possible_score, level, completed_at, duration_seconds
		FROM game_sessions
		WHERE profile_id = ?
		ORDER BY completed_at DESC
	`

	return r.querySessions(query, profileID)
}

// ForProfileAndGame retrieves a profile's sessions for one game type,
// newest first
func (r *SessionRepository) ForProfileAndGame(profileID string, gameType models.GameType) ([]models.GameSession, error) {
	query := `
		SELECT id, profile_id, game_type, score, max_possible_score, level, completed_at, duration_seconds
		FROM game_sessions
		WHERE profile_id = ? AND game_type = ?
		ORDER BY completed_at DESC
	`

	return r.querySessions(query, profileID, gameType)
}

// DeleteForProfile removes all sessions for a profile (progress reset)
func (r *SessionRepository) DeleteForProfile(profileID string) error {
	query := "DELETE FROM game_sessions WHERE profile_id = ?"
	_, err := r.db.Exec(query, profileID)
	return err
}

func (r *SessionRepository) querySessions(query string, args ...interface{}) ([]models.GameSession, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.GameSession
	for rows.Next() {
		var session models.GameSession
		err := rows.Scan(
			&session.ID,
			&session.ProfileID,
			&session.GameType,
			&session.Score,
			&session.MaxPossibleScore,
			&session.Level,
			&session.CompletedAt,
			&session.DurationSeconds,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}
