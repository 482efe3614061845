package engine

import (
	"context"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

// Status is the dashboard summary for the player.
type Status struct {
	User             storage.User
	XPThreshold      int
	CurrentStreak    int
	LongestStreak    int
	TodayCount       int
	TotalCompletions int
	Class            *Class
	StatCap          int
	UnlockedCount    int
	AchievementCount int
}

// GetStatus assembles the player dashboard.
func (s *Service) GetStatus(ctx context.Context) (*Status, error) {
	u, err := s.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	log, err := s.loadLog(ctx)
	if err != nil {
		return nil, err
	}
	states, err := s.achievements.ListAll(ctx, s.username)
	if err != nil {
		return nil, err
	}
	unlocked := 0
	for _, st := range states {
		if st.Unlocked {
			unlocked++
		}
	}
	now := s.now()
	st := &Status{
		User:             *u,
		XPThreshold:      XPThreshold(u.Level),
		CurrentStreak:    CurrentStreak(log, now),
		LongestStreak:    LongestStreak(log),
		TodayCount:       log.CountOnDay(DayKey(now)),
		TotalCompletions: log.Total(),
		StatCap:          statCapFor(u.SelectedClass),
		UnlockedCount:    unlocked,
		AchievementCount: len(Catalog()),
	}
	if u.SelectedClass != nil {
		if c, ok := ClassByID(*u.SelectedClass); ok {
			st.Class = &c
		}
	}
	return st, nil
}
