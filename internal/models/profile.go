package models

import "time"

// Profile represents one player identity. A profile owns all of its
// sessions, achievements and difficulty unlocks; deleting it cascades.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AvatarEmoji string    `json:"avatar_emoji"`
	PINHash     string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasPIN reports whether the profile is protected by a PIN
func (p *Profile) HasPIN() bool {
	return p.PINHash != ""
}
