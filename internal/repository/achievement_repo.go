package repository

import (
	"mindgym/internal/database"
	"mindgym/internal/models"
)

// AchievementRepository handles achievement database operations
type AchievementRepository struct {
	db *database.DB
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *database.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// Insert stores an earned badge. The badge engine guarantees the
// (profile, badge type) pair is new before calling.
func (r *AchievementRepository) Insert(achievement models.Achievement) error {
	query := `
		INSERT INTO achievements (id, profile_id, badge_type, unlocked_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		achievement.ID,
		achievement.ProfileID,
		achievement.BadgeType,
		achievement.UnlockedAt,
	)
	return err
}

// ForProfile retrieves all achievements for a profile, newest first
func (r *AchievementRepository) ForProfile(profileID string) ([]models.Achievement, error) {
	query := `
		SELECT id, profile_id, badge_type, unlocked_at
		FROM achievements
		WHERE profile_id = ?
		ORDER BY unlocked_at DESC
	`

	rows, err := r.db.Query(query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var achievement models.Achievement
		err := rows.Scan(
			&achievement.ID,
			&achievement.ProfileID,
			&achievement.BadgeType,
			&achievement.UnlockedAt,
		)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, achievement)
	}

	return achievements, rows.Err()
}

// DeleteForProfile removes all achievements for a profile. Only used by
// full profile deletion; progress reset preserves badges.
func (r *AchievementRepository) DeleteForProfile(profileID string) error {
	query := "DELETE FROM achievements WHERE profile_id = ?"
	_, err := r.db.Exec(query, profileID)
	return err
}
