package badges

import (
	"time"

	"mindgym/internal/analytics"
	"mindgym/internal/models"
)

var milestoneRules = []struct {
	threshold int
	badge     models.BadgeType
}{
	{1, models.BadgeFirstSteps},
	{10, models.BadgeGettingStarted},
	{50, models.BadgeDedicated},
	{100, models.BadgeCommitted},
	{500, models.BadgeLegend},
}

var streakRules = []struct {
	threshold int
	badge     models.BadgeType
}{
	{3, models.BadgeOnTrack},
	{7, models.BadgeConsistent},
	{14, models.BadgePersistent},
	{30, models.BadgeUnstoppable},
}

var percentileRules = []struct {
	threshold int
	badge     models.BadgeType
}{
	{75, models.BadgeRisingStar},
	{90, models.BadgeElite},
	{95, models.BadgeChampion},
	{99, models.BadgeGenius},
}

// awardSet collects newly qualifying badges, deduplicating against both
// the already-earned set and badges queued earlier in the same pass
type awardSet struct {
	existing map[models.BadgeType]bool
	queued   map[models.BadgeType]bool
	awarded  []models.BadgeType
}

func newAwardSet(existing []models.BadgeType) *awardSet {
	set := &awardSet{
		existing: make(map[models.BadgeType]bool, len(existing)),
		queued:   make(map[models.BadgeType]bool),
	}
	for _, b := range existing {
		set.existing[b] = true
	}
	return set
}

func (a *awardSet) award(badge models.BadgeType) {
	if a.existing[badge] || a.queued[badge] {
		return
	}
	a.queued[badge] = true
	a.awarded = append(a.awarded, badge)
}

// CheckAfterSession evaluates all badge rules after one new session.
// history must already include the new session. Milestone, streak and
// mastery rules see the full history; performance and percentile rules
// are restricted to the session that just completed.
func CheckAfterSession(session models.GameSession, history []models.GameSession, existing []models.BadgeType, now time.Time) []models.BadgeType {
	set := newAwardSet(existing)

	checkMilestones(history, set)
	checkStreaks(history, now, set)
	checkPerformance([]models.GameSession{session}, set)
	checkMastery(history, set)
	checkPercentiles([]models.GameSession{session}, set)

	return set.awarded
}

// Resync evaluates every rule against the entire history, awarding
// anything not yet earned. Used to backfill badges retroactively, e.g.
// after a data import.
func Resync(history []models.GameSession, existing []models.BadgeType, now time.Time) []models.BadgeType {
	set := newAwardSet(existing)

	checkMilestones(history, set)
	checkStreaks(history, now, set)
	checkPerformance(history, set)
	checkMastery(history, set)
	checkPercentiles(history, set)

	return set.awarded
}

func checkMilestones(history []models.GameSession, set *awardSet) {
	for _, rule := range milestoneRules {
		if len(history) >= rule.threshold {
			set.award(rule.badge)
		}
	}
}

func checkStreaks(history []models.GameSession, now time.Time, set *awardSet) {
	streak := analytics.CurrentStreak(history, now)
	for _, rule := range streakRules {
		if streak >= rule.threshold {
			set.award(rule.badge)
		}
	}
}

func checkPerformance(scope []models.GameSession, set *awardSet) {
	for _, s := range scope {
		if s.Accuracy() >= 100 {
			set.award(models.BadgePerfectionist)
			return
		}
	}
}

// checkMastery awards a category's mastery badge when every game type in
// the category has been played and each one's best accuracy is 80 or
// better. A category with an unplayed member game never qualifies.
func checkMastery(history []models.GameSession, set *awardSet) {
	for _, category := range models.GameCategories {
		badge := models.MasteryBadge[category.Category]
		if hasCategoryMastery(history, category.Category) {
			set.award(badge)
		}
	}
}

func hasCategoryMastery(history []models.GameSession, category models.GameCategory) bool {
	for _, gameType := range models.GamesInCategory(category) {
		best := -1.0
		for _, s := range history {
			if s.GameType != gameType {
				continue
			}
			if acc := s.Accuracy(); acc > best {
				best = acc
			}
		}
		if best < 80 {
			return false
		}
	}
	return true
}

// checkPercentiles rates each session's own score against its game's
// distribution. One session can satisfy several thresholds at once.
func checkPercentiles(scope []models.GameSession, set *awardSet) {
	for _, s := range scope {
		if !s.GameType.IsValid() {
			continue
		}
		percentile := analytics.Percentile(s.Score, s.GameType)
		for _, rule := range percentileRules {
			if percentile >= rule.threshold {
				set.award(rule.badge)
			}
		}
	}
}

// Progress reports fractional completion toward milestone and streak
// badges, and 0/1 for the performance badge. Display only; never gates
// awards.
func Progress(history []models.GameSession, now time.Time) map[models.BadgeType]float64 {
	progress := make(map[models.BadgeType]float64)
	total := float64(len(history))
	streak := float64(analytics.CurrentStreak(history, now))

	for _, rule := range milestoneRules {
		progress[rule.badge] = capped(total / float64(rule.threshold))
	}
	for _, rule := range streakRules {
		progress[rule.badge] = capped(streak / float64(rule.threshold))
	}

	progress[models.BadgePerfectionist] = 0
	for _, s := range history {
		if s.Accuracy() >= 100 {
			progress[models.BadgePerfectionist] = 1
			break
		}
	}

	return progress
}

func capped(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
