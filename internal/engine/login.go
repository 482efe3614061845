package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// LoginResult reports a daily check-in.
type LoginResult struct {
	Awarded     bool
	XP          int
	LoginStreak int
	TotalLogins int
	Level       int
	Unlocked    []Achievement
}

// RecordLogin awards the daily check-in bonus. Consecutive days grow
// the streak bonus; the first check-in of a day is the only one that
// pays.
func (s *Service) RecordLogin(ctx context.Context) (*LoginResult, error) {
	u, err := s.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	today := DayKey(now)
	if u.LastLogin != nil && *u.LastLogin == today {
		return &LoginResult{
			LoginStreak: u.LoginStreak,
			TotalLogins: u.TotalLogins,
			Level:       u.Level,
		}, nil
	}

	yesterday := DayKey(now.AddDate(0, 0, -1))
	if u.LastLogin != nil && *u.LastLogin == yesterday {
		u.LoginStreak++
	} else {
		u.LoginStreak = 1
	}
	u.LastLogin = &today
	u.TotalLogins++

	xp := LoginBonusXP(u.LoginStreak)
	GrantXP(u, xp)
	Settle(u)
	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	log, err := s.loadLog(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.unlockAchievements(ctx, u, log)
	if err != nil {
		return nil, err
	}
	s.log.Info("daily check-in",
		zap.Int("xp", xp),
		zap.Int("login_streak", u.LoginStreak))
	return &LoginResult{
		Awarded:     true,
		XP:          xp,
		LoginStreak: u.LoginStreak,
		TotalLogins: u.TotalLogins,
		Level:       u.Level,
		Unlocked:    unlocked,
	}, nil
}
