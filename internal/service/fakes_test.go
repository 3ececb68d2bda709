package service

import (
	"sort"

	"mindgym/internal/models"
)

// In-memory store fakes backing the service tests.

type fakeProfileStore struct {
	profiles map[string]models.Profile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[string]models.Profile)}
}

func (f *fakeProfileStore) Create(profile *models.Profile) error {
	f.profiles[profile.ID] = *profile
	return nil
}

func (f *fakeProfileStore) GetByID(id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProfileStore) List() ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range f.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProfileStore) Update(profile *models.Profile) error {
	f.profiles[profile.ID] = *profile
	return nil
}

func (f *fakeProfileStore) Delete(id string) error {
	delete(f.profiles, id)
	return nil
}

type fakeSessionStore struct {
	sessions []models.GameSession
}

func (f *fakeSessionStore) Insert(session models.GameSession) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionStore) ForProfile(profileID string) ([]models.GameSession, error) {
	var out []models.GameSession
	for _, s := range f.sessions {
		if s.ProfileID == profileID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	return out, nil
}

func (f *fakeSessionStore) ForProfileAndGame(profileID string, gameType models.GameType) ([]models.GameSession, error) {
	all, _ := f.ForProfile(profileID)
	var out []models.GameSession
	for _, s := range all {
		if s.GameType == gameType {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionStore) DeleteForProfile(profileID string) error {
	var kept []models.GameSession
	for _, s := range f.sessions {
		if s.ProfileID != profileID {
			kept = append(kept, s)
		}
	}
	f.sessions = kept
	return nil
}

type fakeAchievementStore struct {
	achievements []models.Achievement
}

func (f *fakeAchievementStore) Insert(achievement models.Achievement) error {
	f.achievements = append(f.achievements, achievement)
	return nil
}

func (f *fakeAchievementStore) ForProfile(profileID string) ([]models.Achievement, error) {
	var out []models.Achievement
	for _, a := range f.achievements {
		if a.ProfileID == profileID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAchievementStore) DeleteForProfile(profileID string) error {
	var kept []models.Achievement
	for _, a := range f.achievements {
		if a.ProfileID != profileID {
			kept = append(kept, a)
		}
	}
	f.achievements = kept
	return nil
}

type fakeUnlockStore struct {
	unlocks []models.DifficultyUnlock
}

func (f *fakeUnlockStore) Insert(unlock models.DifficultyUnlock) error {
	f.unlocks = append(f.unlocks, unlock)
	return nil
}

func (f *fakeUnlockStore) ForProfile(profileID string) ([]models.DifficultyUnlock, error) {
	var out []models.DifficultyUnlock
	for _, u := range f.unlocks {
		if u.ProfileID == profileID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUnlockStore) MaxUnlockedLevel(profileID string, gameType models.GameType) (int, error) {
	max := 1
	for _, u := range f.unlocks {
		if u.ProfileID == profileID && u.GameType == gameType && u.Level > max {
			max = u.Level
		}
	}
	return max, nil
}

func (f *fakeUnlockStore) DeleteForProfile(profileID string) error {
	var kept []models.DifficultyUnlock
	for _, u := range f.unlocks {
		if u.ProfileID != profileID {
			kept = append(kept, u)
		}
	}
	f.unlocks = kept
	return nil
}
