package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

// AchievementView joins a catalog entry with its unlock state.
type AchievementView struct {
	Achievement
	Unlocked   bool
	UnlockedAt *time.Time
}

// ListAchievements returns the full catalog with current unlock
// state, in catalog order.
func (s *Service) ListAchievements(ctx context.Context) ([]AchievementView, error) {
	if _, err := s.loadUser(ctx); err != nil {
		return nil, err
	}
	states, err := s.achievements.ListAll(ctx, s.username)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	byID := make(map[string]storage.AchievementState, len(states))
	for _, st := range states {
		byID[st.ID] = st
	}
	views := make([]AchievementView, 0, len(Catalog()))
	for _, def := range Catalog() {
		v := AchievementView{Achievement: def}
		if st, ok := byID[def.ID]; ok {
			v.Unlocked = st.Unlocked
			v.UnlockedAt = st.UnlockedAt
		}
		views = append(views, v)
	}
	return views, nil
}

// snapshotInput assembles the progress snapshot achievements are
// judged against.
func (s *Service) snapshotInput(ctx context.Context, u *storage.User, log *CompletionLog) (AchievementInput, error) {
	journalCount, err := s.journal.Count(ctx, s.username)
	if err != nil {
		return AchievementInput{}, fmt.Errorf("count journal entries: %w", err)
	}
	now := s.now()
	return AchievementInput{
		TotalCompletions:  log.Total(),
		CurrentStreak:     CurrentStreak(log, now),
		TodayCount:        log.CountOnDay(DayKey(now)),
		JournalCount:      journalCount,
		StudySeconds:      u.TimerStudy,
		ExerciseSeconds:   u.TimerExercise,
		MeditationSeconds: u.TimerMeditation,
		Level:             u.Level,
		TotalXPEarned:     u.TotalXPEarned,
		TotalLogins:       u.TotalLogins,
		Stats: map[Stat]int{
			StatStrength:   u.StatStrength,
			StatDiscipline: u.StatDiscipline,
			StatFocus:      u.StatFocus,
			StatVitality:   u.StatVitality,
			StatWisdom:     u.StatWisdom,
		},
		VisionSet:      u.Vision != "" && u.AntiVision != "",
		ClassChosen:    u.SelectedClass != nil,
		QuestsCreated:  u.QuestsCreated,
		LowEnergyCount: u.LowEnergyCount,
	}, nil
}

// unlockAchievements evaluates the snapshot against every locked
// achievement and persists new unlocks. Unlocks are monotonic; a
// condition going false again later never relocks anything.
func (s *Service) unlockAchievements(ctx context.Context, u *storage.User, log *CompletionLog) ([]Achievement, error) {
	in, err := s.snapshotInput(ctx, u, log)
	if err != nil {
		return nil, err
	}
	conds := EvaluateConditions(in)
	states, err := s.achievements.ListAll(ctx, s.username)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	var unlocked []Achievement
	for _, st := range states {
		if st.Unlocked || !conds[st.Condition] {
			continue
		}
		if err := s.achievements.Unlock(ctx, s.username, st.ID, s.now()); err != nil {
			return nil, fmt.Errorf("unlock achievement %s: %w", st.ID, err)
		}
		if def, ok := AchievementByID(st.ID); ok {
			unlocked = append(unlocked, def)
			s.log.Info("achievement unlocked",
				zap.String("id", def.ID),
				zap.String("name", def.Name))
		}
	}
	return unlocked, nil
}
