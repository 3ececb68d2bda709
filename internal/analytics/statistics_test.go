package analytics

import (
	"testing"
	"time"

	"mindgym/internal/models"
)

func sessionsWithScores(gameType models.GameType, scores ...int) []models.GameSession {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sessions := make([]models.GameSession, len(scores))
	for i, score := range scores {
		sessions[i] = models.GameSession{
			GameType:         gameType,
			Score:            score,
			MaxPossibleScore: 100,
			Level:            1,
			CompletedAt:      base.Add(time.Duration(i) * time.Hour),
		}
	}
	return sessions
}

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := ComputeStatistics(nil, models.GameMentalMath)

	if stats.TotalGamesPlayed != 0 {
		t.Errorf("TotalGamesPlayed = %d, want 0", stats.TotalGamesPlayed)
	}
	if stats.Percentile != 50 {
		t.Errorf("Percentile = %d, want 50", stats.Percentile)
	}
	if stats.RecentTrend != TrendStable {
		t.Errorf("RecentTrend = %s, want %s", stats.RecentTrend, TrendStable)
	}
}

func TestComputeStatisticsAggregates(t *testing.T) {
	sessions := sessionsWithScores(models.GameMentalMath, 40, 60, 80)
	// A session for another game must not contribute
	sessions = append(sessions, models.GameSession{
		GameType:         models.GameVocabulary,
		Score:            99,
		MaxPossibleScore: 100,
		CompletedAt:      time.Now(),
	})

	stats := ComputeStatistics(sessions, models.GameMentalMath)

	if stats.TotalGamesPlayed != 3 {
		t.Errorf("TotalGamesPlayed = %d, want 3", stats.TotalGamesPlayed)
	}
	if stats.AverageScore != 60 {
		t.Errorf("AverageScore = %v, want 60", stats.AverageScore)
	}
	if stats.HighScore != 80 {
		t.Errorf("HighScore = %d, want 80", stats.HighScore)
	}
	if stats.AverageAccuracy != 60 {
		t.Errorf("AverageAccuracy = %v, want 60", stats.AverageAccuracy)
	}
	// Mean score of 60 sits at the mean of the MENTAL_MATH distribution
	// shifted by +5/25 of a standard deviation
	if stats.Percentile != Percentile(60, models.GameMentalMath) {
		t.Errorf("Percentile = %d, want %d", stats.Percentile, Percentile(60, models.GameMentalMath))
	}
}

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		expected Trend
	}{
		{
			name:     "fewer than three sessions is stable",
			scores:   []int{10, 90},
			expected: TrendStable,
		},
		{
			name:     "recent scores well above earlier ones",
			scores:   []int{20, 20, 20, 60, 60, 60, 60, 60},
			expected: TrendImproving,
		},
		{
			name:     "recent scores well below earlier ones",
			scores:   []int{80, 80, 80, 30, 30, 30, 30, 30},
			expected: TrendDeclining,
		},
		{
			name:     "scores within ten percent are stable",
			scores:   []int{50, 50, 50, 52, 52, 52, 52, 52},
			expected: TrendStable,
		},
		{
			name:     "three sessions split last five against nothing",
			scores:   []int{10, 50, 90},
			expected: TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := sessionsWithScores(models.GameLogicPuzzle, tt.scores...)
			stats := ComputeStatistics(sessions, models.GameLogicPuzzle)
			if stats.RecentTrend != tt.expected {
				t.Errorf("RecentTrend = %s, want %s", stats.RecentTrend, tt.expected)
			}
		})
	}
}
