package analytics

import (
	"time"

	"mindgym/internal/models"
)

// CurrentStreak counts consecutive calendar days (in now's location)
// with at least one completed session, walking backward from the most
// recent active day. A streak only counts while it is alive: if the
// most recent active day is before yesterday, the streak is 0.
func CurrentStreak(sessions []models.GameSession, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	loc := now.Location()
	days := make(map[time.Time]bool, len(sessions))
	var mostRecent time.Time
	for _, s := range sessions {
		day := startOfDay(s.CompletedAt.In(loc))
		days[day] = true
		if day.After(mostRecent) {
			mostRecent = day
		}
	}

	yesterday := startOfDay(now).AddDate(0, 0, -1)
	if mostRecent.Before(yesterday) {
		return 0
	}

	streak := 1
	for current := mostRecent; days[current.AddDate(0, 0, -1)]; current = current.AddDate(0, 0, -1) {
		streak++
	}

	return streak
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
