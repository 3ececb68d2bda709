package analytics

import (
	"math"
	"sort"

	"mindgym/internal/models"
)

// Trend describes the direction of a player's recent scores
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// GameStatistics aggregates one profile's history for a single game type
type GameStatistics struct {
	GameType         models.GameType `json:"game_type"`
	AverageScore     float64         `json:"average_score"`
	HighScore        int             `json:"high_score"`
	TotalGamesPlayed int             `json:"total_games_played"`
	AverageAccuracy  float64         `json:"average_accuracy"`
	Percentile       int             `json:"percentile"`
	RecentTrend      Trend           `json:"recent_trend"`
}

// ComputeStatistics derives aggregate statistics for one game type from
// a profile's session history. An empty history yields a neutral result
// (zeroes, 50th percentile, stable trend).
func ComputeStatistics(sessions []models.GameSession, gameType models.GameType) GameStatistics {
	var gameSessions []models.GameSession
	for _, s := range sessions {
		if s.GameType == gameType {
			gameSessions = append(gameSessions, s)
		}
	}

	if len(gameSessions) == 0 {
		return GameStatistics{
			GameType:    gameType,
			Percentile:  50,
			RecentTrend: TrendStable,
		}
	}

	var scoreSum, accuracySum float64
	highScore := gameSessions[0].Score
	for _, s := range gameSessions {
		scoreSum += float64(s.Score)
		accuracySum += s.Accuracy()
		if s.Score > highScore {
			highScore = s.Score
		}
	}

	averageScore := scoreSum / float64(len(gameSessions))

	return GameStatistics{
		GameType:         gameType,
		AverageScore:     averageScore,
		HighScore:        highScore,
		TotalGamesPlayed: len(gameSessions),
		AverageAccuracy:  accuracySum / float64(len(gameSessions)),
		Percentile:       Percentile(int(math.Round(averageScore)), gameType),
		RecentTrend:      computeTrend(gameSessions),
	}
}

// computeTrend compares the mean of the last five sessions against the
// mean of everything before them. Fewer than three sessions is always
// stable.
func computeTrend(sessions []models.GameSession) Trend {
	if len(sessions) < 3 {
		return TrendStable
	}

	sorted := make([]models.GameSession, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.Before(sorted[j].CompletedAt)
	})

	split := len(sorted) - 5
	if split < 0 {
		split = 0
	}

	recentAvg := meanScore(sorted[split:])
	olderAvg := recentAvg
	if split > 0 {
		olderAvg = meanScore(sorted[:split])
	}

	switch {
	case recentAvg > olderAvg*1.1:
		return TrendImproving
	case recentAvg < olderAvg*0.9:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func meanScore(sessions []models.GameSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sessions {
		sum += float64(s.Score)
	}
	return sum / float64(len(sessions))
}
