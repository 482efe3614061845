package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

// QuestInput carries the editable fields of a quest.
type QuestInput struct {
	Name        string
	Icon        string
	Category    string
	XPBase      int
	Target      int
	Essential   bool
	Frequency   Frequency
	CustomDays  []int
	StatRewards map[string]int
}

func (in *QuestInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("quest name is required")
	}
	if in.XPBase <= 0 {
		return fmt.Errorf("xp reward must be positive")
	}
	if !in.Frequency.IsValid() {
		return fmt.Errorf("invalid frequency: %q", in.Frequency)
	}
	if in.Frequency == FrequencyCustom {
		if len(in.CustomDays) == 0 {
			return fmt.Errorf("custom frequency needs at least one weekday")
		}
		for _, d := range in.CustomDays {
			if d < 0 || d > 6 {
				return fmt.Errorf("invalid weekday index: %d", d)
			}
		}
	}
	for name, incr := range in.StatRewards {
		if !Stat(name).IsValid() {
			return fmt.Errorf("invalid stat: %q", name)
		}
		if incr <= 0 {
			return fmt.Errorf("stat reward for %s must be positive", name)
		}
	}
	return nil
}

func (in *QuestInput) applyTo(q *storage.Quest) {
	q.Name = strings.TrimSpace(in.Name)
	q.Icon = in.Icon
	q.Category = in.Category
	q.XPBase = in.XPBase
	q.Target = in.Target
	q.Essential = in.Essential
	q.Frequency = string(in.Frequency)
	q.CustomDays = nil
	if in.Frequency == FrequencyCustom {
		q.CustomDays = append(q.CustomDays, in.CustomDays...)
	}
	q.StatRewards = in.StatRewards
	if len(q.StatRewards) == 0 {
		q.StatRewards = map[string]int{string(DefaultStat): 1}
	}
}

// CreateQuest adds a custom quest and bumps the creation counter that
// feeds the creator achievements.
func (s *Service) CreateQuest(ctx context.Context, in QuestInput) (*storage.Quest, []Achievement, error) {
	u, err := s.loadUser(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := in.validate(); err != nil {
		return nil, nil, err
	}
	q := &storage.Quest{
		ID:        uuid.NewString(),
		Username:  s.username,
		CreatedAt: s.now(),
	}
	in.applyTo(q)
	if err := s.quests.Insert(ctx, q); err != nil {
		return nil, nil, fmt.Errorf("insert quest: %w", err)
	}
	u.QuestsCreated++
	if err := s.users.Update(ctx, u); err != nil {
		return nil, nil, fmt.Errorf("save user: %w", err)
	}
	log, err := s.loadLog(ctx)
	if err != nil {
		return nil, nil, err
	}
	unlocked, err := s.unlockAchievements(ctx, u, log)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info("quest created", zap.String("quest", q.ID), zap.String("name", q.Name))
	return q, unlocked, nil
}

// UpdateQuest edits a quest in place. Completion history keeps its
// quest id, so past days are unaffected.
func (s *Service) UpdateQuest(ctx context.Context, id string, in QuestInput) (*storage.Quest, error) {
	if _, err := s.loadUser(ctx); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	q, err := s.quests.Get(ctx, s.username, id)
	if err != nil {
		return nil, fmt.Errorf("load quest: %w", err)
	}
	if q == nil {
		return nil, ErrQuestNotFound
	}
	in.applyTo(q)
	if err := s.quests.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("update quest: %w", err)
	}
	return q, nil
}

// DeleteQuest removes a quest. Its completion history is kept so
// totals and streaks stand.
func (s *Service) DeleteQuest(ctx context.Context, id string) error {
	if _, err := s.loadUser(ctx); err != nil {
		return err
	}
	q, err := s.quests.Get(ctx, s.username, id)
	if err != nil {
		return fmt.Errorf("load quest: %w", err)
	}
	if q == nil {
		return ErrQuestNotFound
	}
	if err := s.quests.Delete(ctx, s.username, id); err != nil {
		return fmt.Errorf("delete quest: %w", err)
	}
	s.log.Info("quest deleted", zap.String("quest", id))
	return nil
}

// QuestView is a quest annotated with its state for the current day.
type QuestView struct {
	storage.Quest
	Scheduled    bool
	Satisfied    bool
	Streak       int
	MonthlyCount int
	ProjectedXP  int
}

// ListQuests returns every quest with today's schedule state and the
// XP a completion right now would pay.
func (s *Service) ListQuests(ctx context.Context) ([]QuestView, error) {
	u, err := s.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	quests, err := s.quests.ListAll(ctx, s.username)
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	log, err := s.loadLog(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	today := DayKey(now)
	firstOfDay := log.CountOnDay(today) == 0
	streak := CurrentStreak(log, now)
	missedYesterday := log.CountOnDay(DayKey(now.AddDate(0, 0, -1))) == 0

	views := make([]QuestView, 0, len(quests))
	for _, q := range quests {
		if u.LowEnergyMode && !q.Essential {
			continue
		}
		v := QuestView{
			Quest:       q,
			Scheduled:   ScheduledToday(q, now),
			Satisfied:   SatisfiedForPeriod(q, now, log),
			Streak:      QuestStreak(q.ID, log, now),
			ProjectedXP: ComputeQuestXP(q, firstOfDay, streak, missedYesterday).Total,
		}
		if Frequency(q.Frequency) == FrequencyMonthly {
			v.MonthlyCount = MonthlyCompletionCount(q.ID, now, log)
		}
		views = append(views, v)
	}
	return views, nil
}

// GetQuest fetches a single quest.
func (s *Service) GetQuest(ctx context.Context, id string) (*storage.Quest, error) {
	if _, err := s.loadUser(ctx); err != nil {
		return nil, err
	}
	q, err := s.quests.Get(ctx, s.username, id)
	if err != nil {
		return nil, fmt.Errorf("load quest: %w", err)
	}
	if q == nil {
		return nil, ErrQuestNotFound
	}
	return q, nil
}
