package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

// journalKeep caps the retained journal history.
const journalKeep = 30

// JournalInput carries one day's reflections.
type JournalInput struct {
	Mood       Mood
	Wins       string
	Challenges string
	Tomorrow   string
}

// JournalResult reports a saved entry and its side effects.
type JournalResult struct {
	Entry    storage.JournalEntry
	XP       int
	Level    int
	Unlocked []Achievement
}

// AddJournalEntry saves a reflection, pays the self-awareness XP, and
// prunes history beyond the retention cap.
func (s *Service) AddJournalEntry(ctx context.Context, in JournalInput) (*JournalResult, error) {
	u, err := s.loadUser(ctx)
	if err != nil {
		return nil, err
	}
	if !in.Mood.IsValid() {
		return nil, fmt.Errorf("invalid mood: %q", in.Mood)
	}
	wins := strings.TrimSpace(in.Wins)
	challenges := strings.TrimSpace(in.Challenges)
	tomorrow := strings.TrimSpace(in.Tomorrow)
	if wins == "" && challenges == "" && tomorrow == "" {
		return nil, fmt.Errorf("write at least one reflection")
	}

	entry := storage.JournalEntry{
		ID:         uuid.NewString(),
		Username:   s.username,
		Date:       s.now(),
		Mood:       string(in.Mood),
		Wins:       wins,
		Challenges: challenges,
		Tomorrow:   tomorrow,
	}
	if err := s.journal.Insert(ctx, &entry, journalKeep); err != nil {
		return nil, fmt.Errorf("save journal entry: %w", err)
	}

	GrantXP(u, JournalEntryXP)
	levels := Settle(u)
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
	if levels > 0 {
		s.log.Info("level up from journaling", zap.Int("level", u.Level))
	}
	return &JournalResult{
		Entry:    entry,
		XP:       JournalEntryXP,
		Level:    u.Level,
		Unlocked: unlocked,
	}, nil
}

// ListJournal returns retained entries, newest first.
func (s *Service) ListJournal(ctx context.Context) ([]storage.JournalEntry, error) {
	if _, err := s.loadUser(ctx); err != nil {
		return nil, err
	}
	entries, err := s.journal.List(ctx, s.username)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return entries, nil
}
