package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

var (
	// ErrQuestNotFound is returned when a quest id matches nothing.
	ErrQuestNotFound = errors.New("quest not found")
	// ErrAlreadySatisfied is returned when a quest's recurrence
	// requirement is already met for the current period.
	ErrAlreadySatisfied = errors.New("quest already satisfied for this period")
)

// CompleteResult reports everything a completion changed.
type CompleteResult struct {
	Quest        storage.Quest
	XP           XPBreakdown
	StatGains    map[Stat]int
	Streak       int
	LevelsGained int
	Level        int
	PerfectDay   bool
	Unlocked     []Achievement
}

// CompleteQuest records today's completion of a quest and applies
// every downstream effect: XP with bonuses, stat growth, level
// settlement, the perfect-day bonus, and achievement unlocks.
func (s *Service) CompleteQuest(ctx context.Context, questID string) (*CompleteResult, error) {
	u, err := s.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	q, err := s.quests.Get(ctx, s.username, questID)
	if err != nil {
		return nil, fmt.Errorf("load quest: %w", err)
	}
	if q == nil {
		return nil, ErrQuestNotFound
	}
	log, err := s.loadLog(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := DayKey(now)
	if SatisfiedForPeriod(*q, now, log) {
		return nil, ErrAlreadySatisfied
	}

	// The streak and first-of-day flags are read before the new
	// completion lands. The streak walk breaks on an empty today, so
	// the day's first quest prices at streak zero; later completions
	// the same day see the streak including today.
	firstOfDay := log.CountOnDay(today) == 0
	streak := CurrentStreak(log, now)
	missedYesterday := log.CountOnDay(DayKey(now.AddDate(0, 0, -1))) == 0

	breakdown := ComputeQuestXP(*q, firstOfDay, streak, missedYesterday)

	inserted, err := s.completions.Insert(ctx, s.username, q.ID, today, breakdown.Total, now)
	if err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}
	if !inserted {
		return nil, ErrAlreadySatisfied
	}
	log.Add(q.ID, today)

	GrantXP(u, breakdown.Total)
	statGains := ApplyStatRewards(u, *q)
	levels := Settle(u)

	res := &CompleteResult{
		Quest:        *q,
		XP:           breakdown,
		StatGains:    statGains,
		Streak:       CurrentStreak(log, now),
		LevelsGained: levels,
	}

	if s.perfectEssentialDay(ctx, u, log, today) {
		GrantXP(u, PerfectDayBonusXP)
		res.LevelsGained += Settle(u)
		u.LastPerfectDay = &today
		res.PerfectDay = true
	}
	res.Level = u.Level

	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	if res.Unlocked, err = s.unlockAchievements(ctx, u, log); err != nil {
		return nil, err
	}

	s.log.Info("quest completed",
		zap.String("quest", q.ID),
		zap.Int("xp", breakdown.Total),
		zap.Int("streak", res.Streak),
		zap.Int("level", u.Level))
	return res, nil
}

// perfectEssentialDay reports whether every essential quest is done
// today, gated to fire at most once per day.
func (s *Service) perfectEssentialDay(ctx context.Context, u *storage.User, log *CompletionLog, today string) bool {
	if u.LastPerfectDay != nil && *u.LastPerfectDay == today {
		return false
	}
	quests, err := s.quests.ListAll(ctx, s.username)
	if err != nil {
		s.log.Warn("perfect-day check skipped", zap.Error(err))
		return false
	}
	essentials := 0
	for _, q := range quests {
		if !q.Essential {
			continue
		}
		essentials++
		if !log.Has(q.ID, today) {
			return false
		}
	}
	return essentials > 0
}
