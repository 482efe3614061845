package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrClassAlreadySet is returned when the player already chose a
	// class. The choice is permanent.
	ErrClassAlreadySet = errors.New("class already chosen")
	// ErrClassLocked is returned while any base stat is below the cap.
	ErrClassLocked = errors.New("class change requires all stats at 100")
)

// SetVision records the player's vision and anti-vision statements.
func (s *Service) SetVision(ctx context.Context, vision, antiVision string) ([]Achievement, error) {
	u, err := s.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(vision); v != "" {
		u.Vision = v
	}
	if av := strings.TrimSpace(antiVision); av != "" {
		u.AntiVision = av
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	log, err := s.loadLog(ctx)
	if err != nil {
		return nil, err
	}
	return s.unlockAchievements(ctx, u, log)
}

// ToggleLowEnergy flips low energy mode. Activations are counted for
// the shield achievement; only essential quests surface while active.
func (s *Service) ToggleLowEnergy(ctx context.Context) (bool, []Achievement, error) {
	u, err := s.loadUser(ctx)
	if err != nil {
		return false, nil, err
	}
	u.LowEnergyMode = !u.LowEnergyMode
	if u.LowEnergyMode {
		u.LowEnergyCount++
	}
	if err := s.users.Update(ctx, u); err != nil {
		return false, nil, fmt.Errorf("save user: %w", err)
	}
	log, err := s.loadLog(ctx)
	if err != nil {
		return false, nil, err
	}
	unlocked, err := s.unlockAchievements(ctx, u, log)
	if err != nil {
		return false, nil, err
	}
	return u.LowEnergyMode, unlocked, nil
}

// SelectClass performs the one-time class change. It unlocks only
// after every base stat reaches the pre-class cap, and raises the cap
// to its class ceiling.
func (s *Service) SelectClass(ctx context.Context, classID string) (*Class, []Achievement, error) {
	u, err := s.loadUser(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := validateClassID(classID); err != nil {
		return nil, nil, err
	}
	if u.SelectedClass != nil {
		return nil, nil, ErrClassAlreadySet
	}
	if !allStatsMaxed(u) {
		return nil, nil, ErrClassLocked
	}
	u.SelectedClass = &classID
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
	c, _ := ClassByID(classID)
	s.log.Info("class chosen", zap.String("class", classID))
	return &c, unlocked, nil
}

// ResetProgress wipes progression back to a fresh account: level,
// XP, stats, completions, timers, class, and achievement unlocks.
// The journal, vision, and login history survive.
func (s *Service) ResetProgress(ctx context.Context) error {
	u, err := s.loadUser(ctx)
	if err != nil {
		return err
	}
	if err := s.completions.DeleteAll(ctx, s.username); err != nil {
		return fmt.Errorf("reset completions: %w", err)
	}
	if err := s.quests.DeleteAll(ctx, s.username); err != nil {
		return fmt.Errorf("reset quests: %w", err)
	}
	if err := s.seedDefaultQuests(ctx); err != nil {
		return err
	}
	if err := s.achievements.RelockAll(ctx, s.username); err != nil {
		return fmt.Errorf("relock achievements: %w", err)
	}

	u.Level = 1
	u.XP = 0
	u.TotalXPEarned = 0
	u.StatStrength = 0
	u.StatDiscipline = 0
	u.StatFocus = 0
	u.StatVitality = 0
	u.StatWisdom = 0
	u.SelectedClass = nil
	u.TimerStudy = 0
	u.TimerExercise = 0
	u.TimerMeditation = 0
	u.TimerSpeaking = 0
	u.LastPerfectDay = nil
	if err := s.users.Update(ctx, u); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	s.log.Warn("progress reset", zap.String("username", s.username))
	return nil
}

// compactRetainDays bounds the completion history kept on disk.
const compactRetainDays = 90

// CompactResult reports what compaction removed.
type CompactResult struct {
	CompletionsPruned int64
	CutoffDay         string
}

// Compact prunes completion records older than the retention window
// and trims journal history to its cap. Aggregates like total XP and
// unlock state are unaffected.
func (s *Service) Compact(ctx context.Context) (*CompactResult, error) {
	if _, err := s.loadUser(ctx); err != nil {
		return nil, err
	}
	cutoff := DayKey(s.now().AddDate(0, 0, -compactRetainDays))
	pruned, err := s.completions.PruneBefore(ctx, s.username, cutoff)
	if err != nil {
		return nil, fmt.Errorf("prune completions: %w", err)
	}
	if err := s.journal.Prune(ctx, s.username, journalKeep); err != nil {
		return nil, fmt.Errorf("prune journal: %w", err)
	}
	s.log.Info("history compacted",
		zap.String("cutoff", cutoff),
		zap.Int64("completions_pruned", pruned))
	return &CompactResult{CompletionsPruned: pruned, CutoffDay: cutoff}, nil
}
