package service

import (
	"context"
	"fmt"
	"time"

	"mindgym/internal/analytics"
	"mindgym/internal/models"
)

// ProgressReport summarizes one profile's activity over the report
// period
type ProgressReport struct {
	ProfileName   string             `json:"profile_name"`
	PeriodStart   time.Time          `json:"period_start"`
	PeriodEnd     time.Time          `json:"period_end"`
	GamesPlayed   int                `json:"games_played"`
	CurrentStreak int                `json:"current_streak"`
	NewBadges     []models.BadgeInfo `json:"new_badges"`
	Categories    []CategoryReport   `json:"categories"`
}

// CategoryReport aggregates one game category over the report period
type CategoryReport struct {
	DisplayName     string  `json:"display_name"`
	GamesPlayed     int     `json:"games_played"`
	AverageAccuracy float64 `json:"average_accuracy"`
}

// ReportService builds weekly progress reports and delivers them by
// email
type ReportService struct {
	profiles     ProfileStore
	sessions     SessionStore
	achievements AchievementStore
	email        *EmailService
	now          func() time.Time
}

// NewReportService creates a new report service
func NewReportService(profiles ProfileStore, sessions SessionStore, achievements AchievementStore, email *EmailService) *ReportService {
	return &ReportService{
		profiles:     profiles,
		sessions:     sessions,
		achievements: achievements,
		email:        email,
		now:          time.Now,
	}
}

// BuildReport summarizes the last seven days for one profile
func (s *ReportService) BuildReport(profileID string) (*ProgressReport, error) {
	profile, err := s.profiles.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	history, err := s.sessions.ForProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	achievements, err := s.achievements.ForProfile(profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}

	end := s.now()
	start := end.AddDate(0, 0, -7)

	report := &ProgressReport{
		ProfileName:   profile.Name,
		PeriodStart:   start,
		PeriodEnd:     end,
		CurrentStreak: analytics.CurrentStreak(history, end),
	}

	var recent []models.GameSession
	for _, session := range history {
		if session.CompletedAt.After(start) {
			recent = append(recent, session)
		}
	}
	report.GamesPlayed = len(recent)

	for _, a := range achievements {
		if a.UnlockedAt.After(start) {
			report.NewBadges = append(report.NewBadges, a.Info())
		}
	}

	for _, category := range models.GameCategories {
		cr := CategoryReport{DisplayName: category.DisplayName}
		var accuracySum float64
		for _, session := range recent {
			if models.Games[session.GameType].Category != category.Category {
				continue
			}
			cr.GamesPlayed++
			accuracySum += session.Accuracy()
		}
		if cr.GamesPlayed > 0 {
			cr.AverageAccuracy = accuracySum / float64(cr.GamesPlayed)
		}
		report.Categories = append(report.Categories, cr)
	}

	return report, nil
}

// SendWeeklyReports builds and emails a report for every profile to the
// configured recipient. Failures for one profile are logged via the
// returned error but do not stop the remaining sends.
func (s *ReportService) SendWeeklyReports(ctx context.Context, toEmail string) error {
	if toEmail == "" || !s.email.IsEnabled() {
		return nil
	}

	profiles, err := s.profiles.List()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	var firstErr error
	for _, profile := range profiles {
		report, err := s.BuildReport(profile.ID)
		if err == nil {
			err = s.email.SendProgressReport(ctx, toEmail, report)
		}
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("report for %s: %w", profile.Name, err)
		}
	}
	return firstErr
}
