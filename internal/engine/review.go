package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

// reviewKeep caps retained weekly reviews.
const reviewKeep = 12

// ErrAlreadyReviewed is returned when a weekly review was already
// filed today.
var ErrAlreadyReviewed = errors.New("weekly review already filed today")

// ReviewResult reports a saved weekly review.
type ReviewResult struct {
	Review storage.WeeklyReview
	XP     int
	Level  int
}

// SaveWeeklyReview files a weekly reflection for today. At most one
// review earns XP per day; retention keeps the last twelve weeks.
func (s *Service) SaveWeeklyReview(ctx context.Context, win, focus string) (*ReviewResult, error) {
	u, err := s.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	win = strings.TrimSpace(win)
	focus = strings.TrimSpace(focus)
	if win == "" && focus == "" {
		return nil, fmt.Errorf("share at least one reflection")
	}
	today := DayKey(s.now())
	if u.LastWeeklyReview != nil && *u.LastWeeklyReview == today {
		return nil, ErrAlreadyReviewed
	}

	rev := storage.WeeklyReview{
		Username: s.username,
		Day:      today,
		Win:      win,
		Focus:    focus,
	}
	if err := s.reviews.Insert(ctx, &rev, reviewKeep); err != nil {
		return nil, fmt.Errorf("save weekly review: %w", err)
	}

	GrantXP(u, WeeklyReviewXP)
	Settle(u)
	u.LastWeeklyReview = &today
	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return &ReviewResult{Review: rev, XP: WeeklyReviewXP, Level: u.Level}, nil
}

// ListWeeklyReviews returns retained reviews, newest first.
func (s *Service) ListWeeklyReviews(ctx context.Context) ([]storage.WeeklyReview, error) {
	if _, err := s.loadUser(ctx); err != nil {
		return nil, err
	}
	revs, err := s.reviews.List(ctx, s.username)
	if err != nil {
		return nil, fmt.Errorf("list weekly reviews: %w", err)
	}
	return revs, nil
}
