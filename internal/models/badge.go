package models

// BadgeCategory groups badges for display
type BadgeCategory string

const (
	BadgeCategoryMilestone   BadgeCategory = "MILESTONE"
	BadgeCategoryStreak      BadgeCategory = "STREAK"
	BadgeCategoryPerformance BadgeCategory = "PERFORMANCE"
	BadgeCategoryMastery     BadgeCategory = "MASTERY"
	BadgeCategoryPercentile  BadgeCategory = "PERCENTILE"
)

// BadgeType identifies a one-time-per-profile award
type BadgeType string

const (
	// Milestones
	BadgeFirstSteps     BadgeType = "first_steps"
	BadgeGettingStarted BadgeType = "getting_started"
	BadgeDedicated      BadgeType = "dedicated"
	BadgeCommitted      BadgeType = "committed"
	BadgeLegend         BadgeType = "legend"

	// Streaks
	BadgeOnTrack     BadgeType = "on_track"
	BadgeConsistent  BadgeType = "consistent"
	BadgePersistent  BadgeType = "persistent"
	BadgeUnstoppable BadgeType = "unstoppable"

	// Performance
	BadgePerfectionist BadgeType = "perfectionist"

	// Category mastery
	BadgeMemoryMaster BadgeType = "memory_master"
	BadgeMathWhiz     BadgeType = "math_whiz"
	BadgeLogicLegend  BadgeType = "logic_legend"
	BadgeWordWizard   BadgeType = "word_wizard"

	// Percentile rankings
	BadgeRisingStar BadgeType = "rising_star"
	BadgeElite      BadgeType = "elite"
	BadgeChampion   BadgeType = "champion"
	BadgeGenius     BadgeType = "genius"
)

// BadgeInfo holds display metadata for a badge type
type BadgeInfo struct {
	Type        BadgeType     `json:"type"`
	DisplayName string        `json:"display_name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Category    BadgeCategory `json:"category"`
}

// Badges maps every badge type to its display metadata
var Badges = map[BadgeType]BadgeInfo{
	BadgeFirstSteps:     {Type: BadgeFirstSteps, DisplayName: "First Steps", Description: "Complete your first game", Icon: "🎯", Category: BadgeCategoryMilestone},
	BadgeGettingStarted: {Type: BadgeGettingStarted, DisplayName: "Getting Started", Description: "Complete 10 games", Icon: "🌟", Category: BadgeCategoryMilestone},
	BadgeDedicated:      {Type: BadgeDedicated, DisplayName: "Dedicated", Description: "Complete 50 games", Icon: "💪", Category: BadgeCategoryMilestone},
	BadgeCommitted:      {Type: BadgeCommitted, DisplayName: "Committed", Description: "Complete 100 games", Icon: "🔥", Category: BadgeCategoryMilestone},
	BadgeLegend:         {Type: BadgeLegend, DisplayName: "Legend", Description: "Complete 500 games", Icon: "👑", Category: BadgeCategoryMilestone},

	BadgeOnTrack:     {Type: BadgeOnTrack, DisplayName: "On Track", Description: "Maintain a 3-day streak", Icon: "📅", Category: BadgeCategoryStreak},
	BadgeConsistent:  {Type: BadgeConsistent, DisplayName: "Consistent", Description: "Maintain a 7-day streak", Icon: "🗓️", Category: BadgeCategoryStreak},
	BadgePersistent:  {Type: BadgePersistent, DisplayName: "Persistent", Description: "Maintain a 14-day streak", Icon: "📆", Category: BadgeCategoryStreak},
	BadgeUnstoppable: {Type: BadgeUnstoppable, DisplayName: "Unstoppable", Description: "Maintain a 30-day streak", Icon: "⚡", Category: BadgeCategoryStreak},

	BadgePerfectionist: {Type: BadgePerfectionist, DisplayName: "Perfectionist", Description: "Achieve 100% accuracy in any game", Icon: "✨", Category: BadgeCategoryPerformance},

	BadgeMemoryMaster: {Type: BadgeMemoryMaster, DisplayName: "Memory Master", Description: "Score 80%+ in all Memory games", Icon: "🧠", Category: BadgeCategoryMastery},
	BadgeMathWhiz:     {Type: BadgeMathWhiz, DisplayName: "Math Whiz", Description: "Score 80%+ in all Math games", Icon: "🔢", Category: BadgeCategoryMastery},
	BadgeLogicLegend:  {Type: BadgeLogicLegend, DisplayName: "Logic Legend", Description: "Score 80%+ in all Logic games", Icon: "🧩", Category: BadgeCategoryMastery},
	BadgeWordWizard:   {Type: BadgeWordWizard, DisplayName: "Word Wizard", Description: "Score 80%+ in all Language games", Icon: "📚", Category: BadgeCategoryMastery},

	BadgeRisingStar: {Type: BadgeRisingStar, DisplayName: "Rising Star", Description: "Reach top 25% in any game", Icon: "⭐", Category: BadgeCategoryPercentile},
	BadgeElite:      {Type: BadgeElite, DisplayName: "Elite", Description: "Reach top 10% in any game", Icon: "🌟", Category: BadgeCategoryPercentile},
	BadgeChampion:   {Type: BadgeChampion, DisplayName: "Champion", Description: "Reach top 5% in any game", Icon: "🏆", Category: BadgeCategoryPercentile},
	BadgeGenius:     {Type: BadgeGenius, DisplayName: "Genius", Description: "Reach top 1% in any game", Icon: "💎", Category: BadgeCategoryPercentile},
}

// MasteryBadge maps each game category to its mastery badge
var MasteryBadge = map[GameCategory]BadgeType{
	CategoryMemory:         BadgeMemoryMaster,
	CategoryMentalMath:     BadgeMathWhiz,
	CategoryProblemSolving: BadgeLogicLegend,
	CategoryLanguage:       BadgeWordWizard,
}

// IsValid reports whether b is one of the known badge types
func (b BadgeType) IsValid() bool {
	_, ok := Badges[b]
	return ok
}
