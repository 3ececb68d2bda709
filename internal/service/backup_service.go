package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"mindgym/internal/models"
)

// BackupVersion identifies the backup file schema
const BackupVersion = "1"

// BackupData is the complete database backup structure
type BackupData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Profiles   []ProfileBackup `json:"profiles"`
}

// ProfileBackup is one profile together with everything it owns
type ProfileBackup struct {
	Profile      models.Profile            `json:"profile"`
	PINHash      string                    `json:"pin_hash,omitempty"`
	Sessions     []models.GameSession      `json:"sessions"`
	Achievements []models.Achievement      `json:"achievements"`
	Unlocks      []models.DifficultyUnlock `json:"unlocks"`
}

// ImportSummary reports what an import did
type ImportSummary struct {
	Profiles       int `json:"profiles"`
	Sessions       int `json:"sessions"`
	Achievements   int `json:"achievements"`
	Unlocks        int `json:"unlocks"`
	BadgesResynced int `json:"badges_resynced"`
}

// BackupService exports and restores the full data set as JSON
type BackupService struct {
	profiles     ProfileStore
	sessions     SessionStore
	achievements AchievementStore
	unlocks      UnlockStore
	badges       *BadgeService
}

// NewBackupService creates a new backup service
func NewBackupService(profiles ProfileStore, sessions SessionStore, achievements AchievementStore, unlocks UnlockStore, badges *BadgeService) *BackupService {
	return &BackupService{
		profiles:     profiles,
		sessions:     sessions,
		achievements: achievements,
		unlocks:      unlocks,
		badges:       badges,
	}
}

// Export writes a JSON backup of every profile and its owned records
func (s *BackupService) Export(w io.Writer) error {
	profiles, err := s.profiles.List()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	data := BackupData{
		Version:    BackupVersion,
		ExportedAt: time.Now(),
	}

	for _, profile := range profiles {
		sessions, err := s.sessions.ForProfile(profile.ID)
		if err != nil {
			return fmt.Errorf("failed to load sessions for %s: %w", profile.ID, err)
		}
		achievements, err := s.achievements.ForProfile(profile.ID)
		if err != nil {
			return fmt.Errorf("failed to load achievements for %s: %w", profile.ID, err)
		}
		unlocks, err := s.unlocks.ForProfile(profile.ID)
		if err != nil {
			return fmt.Errorf("failed to load unlocks for %s: %w", profile.ID, err)
		}

		data.Profiles = append(data.Profiles, ProfileBackup{
			Profile:      profile,
			PINHash:      profile.PINHash,
			Sessions:     sessions,
			Achievements: achievements,
			Unlocks:      unlocks,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Import restores a JSON backup. With clear set, all existing profiles
// (and their owned records, via cascade) are deleted first. Every
// imported profile gets a full badge resync so awards earned by the
// imported history are backfilled.
func (s *BackupService) Import(r io.Reader, clear bool) (*ImportSummary, error) {
	var data BackupData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse backup: %w", err)
	}
	if data.Version != BackupVersion {
		return nil, fmt.Errorf("unsupported backup version: %q", data.Version)
	}

	if clear {
		existing, err := s.profiles.List()
		if err != nil {
			return nil, fmt.Errorf("failed to load profiles: %w", err)
		}
		for _, profile := range existing {
			if err := s.deleteProfileCascade(profile.ID); err != nil {
				return nil, err
			}
		}
	}

	summary := &ImportSummary{}
	for _, pb := range data.Profiles {
		profile := pb.Profile
		profile.PINHash = pb.PINHash
		if err := s.profiles.Create(&profile); err != nil {
			return nil, fmt.Errorf("failed to import profile %s: %w", profile.ID, err)
		}
		summary.Profiles++

		for _, session := range pb.Sessions {
			if err := s.sessions.Insert(session); err != nil {
				return nil, fmt.Errorf("failed to import session %s: %w", session.ID, err)
			}
			summary.Sessions++
		}
		for _, achievement := range pb.Achievements {
			if err := s.achievements.Insert(achievement); err != nil {
				return nil, fmt.Errorf("failed to import achievement %s: %w", achievement.ID, err)
			}
			summary.Achievements++
		}
		for _, unlock := range pb.Unlocks {
			if err := s.unlocks.Insert(unlock); err != nil {
				return nil, fmt.Errorf("failed to import unlock %s: %w", unlock.ID, err)
			}
			summary.Unlocks++
		}

		resynced, err := s.badges.Resync(profile.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resync badges for %s: %w", profile.ID, err)
		}
		summary.BadgesResynced += len(resynced)
		if len(resynced) > 0 {
			log.Printf("Backfilled %d badge(s) for profile %s", len(resynced), profile.ID)
		}
	}

	return summary, nil
}

func (s *BackupService) deleteProfileCascade(profileID string) error {
	if err := s.sessions.DeleteForProfile(profileID); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	if err := s.achievements.DeleteForProfile(profileID); err != nil {
		return fmt.Errorf("failed to clear achievements: %w", err)
	}
	if err := s.unlocks.DeleteForProfile(profileID); err != nil {
		return fmt.Errorf("failed to clear unlocks: %w", err)
	}
	if err := s.profiles.Delete(profileID); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	return nil
}
