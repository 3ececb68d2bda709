package service

import (
	"errors"
	"testing"
	"time"

	"mindgym/internal/models"
)

func TestBuildReport(t *testing.T) {
	profiles := newFakeProfileStore()
	sessions := &fakeSessionStore{}
	achievements := &fakeAchievementStore{}
	svc := NewReportService(profiles, sessions, achievements, nil)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	profiles.Create(&models.Profile{ID: "p1", Name: "Maya", CreatedAt: now, UpdatedAt: now})

	// Two sessions inside the period, one outside
	sessions.Insert(models.GameSession{
		ProfileID: "p1", GameType: models.GameMemoryGrid,
		Score: 80, MaxPossibleScore: 100, Level: 1, CompletedAt: now.AddDate(0, 0, -1),
	})
	sessions.Insert(models.GameSession{
		ProfileID: "p1", GameType: models.GameSequenceMemory,
		Score: 60, MaxPossibleScore: 100, Level: 1, CompletedAt: now.AddDate(0, 0, -2),
	})
	sessions.Insert(models.GameSession{
		ProfileID: "p1", GameType: models.GameMentalMath,
		Score: 90, MaxPossibleScore: 100, Level: 1, CompletedAt: now.AddDate(0, 0, -10),
	})

	// One badge inside the period, one before it
	achievements.Insert(models.Achievement{
		ProfileID: "p1", BadgeType: models.BadgeFirstSteps, UnlockedAt: now.AddDate(0, 0, -10),
	})
	achievements.Insert(models.Achievement{
		ProfileID: "p1", BadgeType: models.BadgeOnTrack, UnlockedAt: now.AddDate(0, 0, -1),
	})

	report, err := svc.BuildReport("p1")
	if err != nil {
		t.Fatalf("BuildReport() error = %v", err)
	}

	if report.ProfileName != "Maya" {
		t.Errorf("ProfileName = %q, want Maya", report.ProfileName)
	}
	if report.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2 (old session excluded)", report.GamesPlayed)
	}
	if len(report.NewBadges) != 1 || report.NewBadges[0].Type != models.BadgeOnTrack {
		t.Errorf("NewBadges = %v, want only on_track", report.NewBadges)
	}
	if len(report.Categories) != len(models.GameCategories) {
		t.Fatalf("Categories = %d, want %d", len(report.Categories), len(models.GameCategories))
	}

	for _, c := range report.Categories {
		switch c.DisplayName {
		case "Memory":
			if c.GamesPlayed != 2 {
				t.Errorf("Memory GamesPlayed = %d, want 2", c.GamesPlayed)
			}
			if c.AverageAccuracy != 70 {
				t.Errorf("Memory AverageAccuracy = %v, want 70", c.AverageAccuracy)
			}
		case "Mental Math":
			if c.GamesPlayed != 0 {
				t.Errorf("Mental Math GamesPlayed = %d, want 0 (outside the period)", c.GamesPlayed)
			}
		}
	}
}

func TestBuildReportMissingProfile(t *testing.T) {
	svc := NewReportService(newFakeProfileStore(), &fakeSessionStore{}, &fakeAchievementStore{}, nil)

	if _, err := svc.BuildReport("missing"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("BuildReport() error = %v, want ErrProfileNotFound", err)
	}
}
