package engine

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

// Service wires the progression rules to storage for a single player.
type Service struct {
	db  *sql.DB
	log *zap.Logger

	username string
	now      func() time.Time

	users        *storage.UserRepo
	quests       *storage.QuestRepo
	completions  *storage.CompletionRepo
	achievements *storage.AchievementRepo
	journal      *storage.JournalRepo
	reviews      *storage.ReviewRepo

	seeded bool
}

func NewService(db *sql.DB, username string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		db:           db,
		log:          log,
		username:     username,
		now:          time.Now,
		users:        storage.NewUserRepo(db),
		quests:       storage.NewQuestRepo(db),
		completions:  storage.NewCompletionRepo(db),
		achievements: storage.NewAchievementRepo(db),
		journal:      storage.NewJournalRepo(db),
		reviews:      storage.NewReviewRepo(db),
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Username returns the player this service operates on.
func (s *Service) Username() string {
	return s.username
}

// loadUser fetches the player, creating and seeding the account on
// first contact.
func (s *Service) loadUser(ctx context.Context) (*storage.User, error) {
	u, err := s.users.Get(ctx, s.username)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	fresh := u == nil
	if fresh {
		if u, err = s.users.GetOrCreate(ctx, s.username); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
	}
	if fresh || !s.seeded {
		if err := s.seedAchievements(ctx); err != nil {
			return nil, err
		}
		s.seeded = true
	}
	if fresh {
		if err := s.seedDefaultQuests(ctx); err != nil {
			return nil, err
		}
		s.log.Info("created new player", zap.String("username", s.username))
	}
	return u, nil
}

func (s *Service) seedAchievements(ctx context.Context) error {
	defs := make([]storage.AchievementState, 0, len(Catalog()))
	for _, a := range Catalog() {
		defs = append(defs, storage.AchievementState{
			Username:  s.username,
			ID:        a.ID,
			Condition: a.Condition,
		})
	}
	if err := s.achievements.Seed(ctx, s.username, defs); err != nil {
		return fmt.Errorf("seed achievements: %w", err)
	}
	return nil
}

func (s *Service) seedDefaultQuests(ctx context.Context) error {
	for _, q := range DefaultQuests() {
		q.Username = s.username
		q.CreatedAt = s.now()
		if err := s.quests.Insert(ctx, &q); err != nil {
			return fmt.Errorf("seed default quests: %w", err)
		}
	}
	return nil
}

// loadLog builds the in-memory completion index from storage.
func (s *Service) loadLog(ctx context.Context) (*CompletionLog, error) {
	records, err := s.completions.ListAll(ctx, s.username)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	return BuildCompletionLog(records), nil
}
