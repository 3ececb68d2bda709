package service

import (
	"errors"
	"testing"
	"time"

	"mindgym/internal/models"
)

func newGameServiceForTest() (*GameService, *fakeSessionStore, *fakeUnlockStore, *fakeAchievementStore) {
	sessions := &fakeSessionStore{}
	achievements := &fakeAchievementStore{}
	unlocks := &fakeUnlockStore{}

	badges := NewBadgeService(sessions, achievements)
	games := NewGameService(sessions, unlocks, badges)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	badges.now = func() time.Time { return now }
	games.now = func() time.Time { return now }

	return games, sessions, unlocks, achievements
}

func TestRecordSessionValidation(t *testing.T) {
	games, _, _, _ := newGameServiceForTest()

	tests := []struct {
		name     string
		input    SessionInput
		expected error
	}{
		{
			name:     "unknown game type",
			input:    SessionInput{GameType: "CHESS", Score: 10, MaxPossibleScore: 100, Level: 1},
			expected: ErrUnknownGameType,
		},
		{
			name:     "level zero",
			input:    SessionInput{GameType: models.GameMentalMath, Score: 10, MaxPossibleScore: 100, Level: 0},
			expected: ErrInvalidLevel,
		},
		{
			name:     "level above maximum",
			input:    SessionInput{GameType: models.GameMentalMath, Score: 10, MaxPossibleScore: 100, Level: 4},
			expected: ErrInvalidLevel,
		},
		{
			name:     "negative score",
			input:    SessionInput{GameType: models.GameMentalMath, Score: -1, MaxPossibleScore: 100, Level: 1},
			expected: ErrInvalidScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := games.RecordSession("p1", tt.input)
			if !errors.Is(err, tt.expected) {
				t.Errorf("RecordSession() error = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestRecordSessionFirstPerfectRound(t *testing.T) {
	games, _, unlocks, achievements := newGameServiceForTest()

	result, err := games.RecordSession("p1", SessionInput{
		GameType:         models.GameMemoryGrid,
		Score:            100,
		MaxPossibleScore: 100,
		Level:            1,
	})
	if err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}

	if result.Accuracy != 100 {
		t.Errorf("Accuracy = %v, want 100", result.Accuracy)
	}
	if result.UnlockedLevel != 2 {
		t.Errorf("UnlockedLevel = %d, want 2", result.UnlockedLevel)
	}

	badgeTypes := make(map[models.BadgeType]bool)
	for _, b := range result.NewBadges {
		badgeTypes[b.Type] = true
	}
	if !badgeTypes[models.BadgeFirstSteps] {
		t.Errorf("NewBadges = %v, want first_steps", result.NewBadges)
	}
	if !badgeTypes[models.BadgePerfectionist] {
		t.Errorf("NewBadges = %v, want perfectionist", result.NewBadges)
	}

	earned, _ := achievements.ForProfile("p1")
	if len(earned) != len(result.NewBadges) {
		t.Errorf("stored %d achievements, result carried %d", len(earned), len(result.NewBadges))
	}
	stored, _ := unlocks.ForProfile("p1")
	if len(stored) != 1 || stored[0].Level != 2 {
		t.Errorf("stored unlocks = %v, want single level-2 unlock", stored)
	}
}

func TestUnlockGate(t *testing.T) {
	perfect := func(level int) SessionInput {
		return SessionInput{
			GameType:         models.GameMentalMath,
			Score:            50,
			MaxPossibleScore: 50,
			Level:            level,
		}
	}

	t.Run("imperfect session never unlocks", func(t *testing.T) {
		games, _, _, _ := newGameServiceForTest()
		result, err := games.RecordSession("p1", SessionInput{
			GameType:         models.GameMentalMath,
			Score:            49,
			MaxPossibleScore: 50,
			Level:            1,
		})
		if err != nil {
			t.Fatalf("RecordSession() error = %v", err)
		}
		if result.UnlockedLevel != 0 {
			t.Errorf("UnlockedLevel = %d, want 0", result.UnlockedLevel)
		}
	})

	t.Run("repeat perfect round does not unlock again", func(t *testing.T) {
		games, _, unlocks, _ := newGameServiceForTest()
		if _, err := games.RecordSession("p1", perfect(1)); err != nil {
			t.Fatalf("RecordSession() error = %v", err)
		}
		result, err := games.RecordSession("p1", perfect(1))
		if err != nil {
			t.Fatalf("RecordSession() error = %v", err)
		}
		if result.UnlockedLevel != 0 {
			t.Errorf("UnlockedLevel = %d, want 0", result.UnlockedLevel)
		}
		stored, _ := unlocks.ForProfile("p1")
		if len(stored) != 1 {
			t.Errorf("stored %d unlocks, want 1", len(stored))
		}
	})

	t.Run("top level has nothing above it", func(t *testing.T) {
		games, _, unlocks, _ := newGameServiceForTest()
		result, err := games.RecordSession("p1", perfect(models.MaxLevel))
		if err != nil {
			t.Fatalf("RecordSession() error = %v", err)
		}
		if result.UnlockedLevel != 0 {
			t.Errorf("UnlockedLevel = %d, want 0", result.UnlockedLevel)
		}
		if stored, _ := unlocks.ForProfile("p1"); len(stored) != 0 {
			t.Errorf("stored unlocks = %v, want none", stored)
		}
	})

	t.Run("perfect level 2 skips ahead of a missing level 2 unlock", func(t *testing.T) {
		// A level-2 session recorded without a stored unlock still opens
		// level 3; the gate only compares against what is stored
		games, _, unlocks, _ := newGameServiceForTest()
		result, err := games.RecordSession("p1", perfect(2))
		if err != nil {
			t.Fatalf("RecordSession() error = %v", err)
		}
		if result.UnlockedLevel != 3 {
			t.Errorf("UnlockedLevel = %d, want 3", result.UnlockedLevel)
		}
		if stored, _ := unlocks.ForProfile("p1"); len(stored) != 1 {
			t.Errorf("stored %d unlocks, want 1", len(stored))
		}
	})
}

func TestSessionsFilterAndLimit(t *testing.T) {
	games, sessions, _, _ := newGameServiceForTest()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		sessions.Insert(models.GameSession{
			ID: "s", ProfileID: "p1", GameType: models.GameVocabulary,
			Score: 10 + i, MaxPossibleScore: 100, Level: 1,
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	sessions.Insert(models.GameSession{
		ID: "other", ProfileID: "p1", GameType: models.GameEstimation,
		Score: 1, MaxPossibleScore: 100, Level: 1, CompletedAt: base,
	})

	filtered, err := games.Sessions("p1", models.GameVocabulary, 0)
	if err != nil {
		t.Fatalf("Sessions() error = %v", err)
	}
	if len(filtered) != 5 {
		t.Errorf("filtered count = %d, want 5", len(filtered))
	}

	limited, err := games.Sessions("p1", "", 3)
	if err != nil {
		t.Fatalf("Sessions() error = %v", err)
	}
	if len(limited) != 3 {
		t.Errorf("limited count = %d, want 3", len(limited))
	}
	// Newest first
	if limited[0].Score != 14 {
		t.Errorf("first session score = %d, want the newest (14)", limited[0].Score)
	}

	if _, err := games.Sessions("p1", "CHESS", 0); !errors.Is(err, ErrUnknownGameType) {
		t.Errorf("unknown filter error = %v, want ErrUnknownGameType", err)
	}
}

func TestSummary(t *testing.T) {
	games, sessions, unlocks, _ := newGameServiceForTest()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	sessions.Insert(models.GameSession{
		ProfileID: "p1", GameType: models.GameMemoryGrid,
		Score: 65, MaxPossibleScore: 100, Level: 1, CompletedAt: now,
	})
	sessions.Insert(models.GameSession{
		ProfileID: "p1", GameType: models.GameMentalMath,
		Score: 55, MaxPossibleScore: 100, Level: 1, CompletedAt: now.AddDate(0, 0, -1),
	})
	unlocks.Insert(models.DifficultyUnlock{
		ProfileID: "p1", GameType: models.GameMemoryGrid, Level: 2, UnlockedAt: now,
	})

	summary, err := games.Summary("p1")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if summary.TotalGamesPlayed != 2 {
		t.Errorf("TotalGamesPlayed = %d, want 2", summary.TotalGamesPlayed)
	}
	if summary.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", summary.CurrentStreak)
	}
	if len(summary.PerGame) != len(models.Games) {
		t.Errorf("PerGame count = %d, want %d", len(summary.PerGame), len(models.Games))
	}
	// Both played games sit at their distribution mean
	if summary.Bracket.Name != "Proficient" {
		t.Errorf("Bracket = %s, want Proficient", summary.Bracket.Name)
	}
	if summary.UnlockedLevels[models.GameMemoryGrid] != 2 {
		t.Errorf("MEMORY_GRID unlocked level = %d, want 2", summary.UnlockedLevels[models.GameMemoryGrid])
	}
	if summary.UnlockedLevels[models.GameVocabulary] != 1 {
		t.Errorf("VOCABULARY unlocked level = %d, want 1", summary.UnlockedLevels[models.GameVocabulary])
	}
}

func TestSummaryEmptyProfile(t *testing.T) {
	games, _, _, _ := newGameServiceForTest()

	summary, err := games.Summary("p1")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.TotalGamesPlayed != 0 || summary.CurrentStreak != 0 {
		t.Errorf("empty profile summary = %+v, want zeroes", summary)
	}
	if summary.Bracket.Name != "Proficient" {
		t.Errorf("Bracket = %s, want the median default Proficient", summary.Bracket.Name)
	}
	for gameType, level := range summary.UnlockedLevels {
		if level != 1 {
			t.Errorf("%s unlocked level = %d, want 1", gameType, level)
		}
	}
}
