package repository

import (
	"database/sql"
	"time"

	"mindgym/internal/database"
	"mindgym/internal/models"
)

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *database.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile
func (r *ProfileRepository) Create(profile *models.Profile) error {
	query := `
		INSERT INTO profiles (id, name, avatar_emoji, pin_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		profile.ID,
		profile.Name,
		profile.AvatarEmoji,
		profile.PINHash,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

// GetByID retrieves a profile by ID; returns nil when not found
func (r *ProfileRepository) GetByID(id string) (*models.Profile, error) {
	query := `
		SELECT id, name, avatar_emoji, pin_hash, created_at, updated_at
		FROM profiles
		WHERE id = ?
	`

	profile := &models.Profile{}
	err := r.db.QueryRow(query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.AvatarEmoji,
		&profile.PINHash,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// List retrieves all profiles, newest first
func (r *ProfileRepository) List() ([]models.Profile, error) {
	query := `
		SELECT id, name, avatar_emoji, pin_hash, created_at, updated_at
		FROM profiles
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var profile models.Profile
		err := rows.Scan(
			&profile.ID,
			&profile.Name,
			&profile.AvatarEmoji,
			&profile.PINHash,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}

// Update updates a profile's name, avatar and PIN hash
func (r *ProfileRepository) Update(profile *models.Profile) error {
	query := `
		UPDATE profiles
		SET name = ?, avatar_emoji = ?, pin_hash = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		profile.Name,
		profile.AvatarEmoji,
		profile.PINHash,
		time.Now(),
		profile.ID,
	)
	return err
}

// Delete removes a profile. Sessions, achievements and unlocks cascade
// via foreign keys; the service layer also deletes them explicitly for
// engines without cascade support.
func (r *ProfileRepository) Delete(id string) error {
	query := "DELETE FROM profiles WHERE id = ?"
	_, err := r.db.Exec(query, id)
	return err
}
