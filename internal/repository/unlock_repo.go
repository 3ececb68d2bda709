package repository

import (
	"mindgym/internal/database"
	"mindgym/internal/models"
)

// UnlockRepository handles difficulty unlock database operations
type UnlockRepository struct {
	db *database.DB
}

// NewUnlockRepository creates a new unlock repository
func NewUnlockRepository(db *database.DB) *UnlockRepository {
	return &UnlockRepository{db: db}
}

// Insert stores a new difficulty unlock
func (r *UnlockRepository) Insert(unlock models.DifficultyUnlock) error {
	query := `
		INSERT INTO difficulty_unlocks (id, profile_id, game_type, level, unlocked_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		unlock.ID,
		unlock.ProfileID,
		unlock.GameType,
		unlock.Level,
		unlock.UnlockedAt,
	)
	return err
}

// ForProfile retrieves all unlock records for a profile
func (r *UnlockRepository) ForProfile(profileID string) ([]models.DifficultyUnlock, error) {
	query := `
		SELECT id, profile_id, game_type, level, unlocked_at
		FROM difficulty_unlocks
		WHERE profile_id = ?
		ORDER BY unlocked_at ASC
	`

	rows, err := r.db.Query(query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocks []models.DifficultyUnlock
	for rows.Next() {
		var unlock models.DifficultyUnlock
		err := rows.Scan(
			&unlock.ID,
			&unlock.ProfileID,
			&unlock.GameType,
			&unlock.Level,
			&unlock.UnlockedAt,
		)
		if err != nil {
			return nil, err
		}
		unlocks = append(unlocks, unlock)
	}

	return unlocks, rows.Err()
}

// MaxUnlockedLevel returns the highest unlocked level for a game, or 1
// when no unlock record exists (level 1 is always available)
func (r *UnlockRepository) MaxUnlockedLevel(profileID string, gameType models.GameType) (int, error) {
	query := `
		SELECT COALESCE(MAX(level), 1)
		FROM difficulty_unlocks
		WHERE profile_id = ? AND game_type = ?
	`

	var level int
	err := r.db.QueryRow(query, profileID, gameType).Scan(&level)
	return level, err
}

// DeleteForProfile removes all unlock records for a profile (progress
// reset)
func (r *UnlockRepository) DeleteForProfile(profileID string) error {
	query := "DELETE FROM difficulty_unlocks WHERE profile_id = ?"
	_, err := r.db.Exec(query, profileID)
	return err
}
