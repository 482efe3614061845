// Package snapshot serializes a player's full state to the portable
// JSON shape used for export files and the cloud mirror.
package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

const dayLayout = "2006-01-02"

// Snapshot is the wire form of one account. Completions are flattened
// to "<questId>-<YYYY-MM-DD>" keys for compatibility with older
// exports.
type Snapshot struct {
	Username      string          `json:"username"`
	Level         int             `json:"level"`
	XP            int             `json:"xp"`
	TotalXPEarned int             `json:"totalXPEarned"`
	Stats         map[string]int  `json:"stats"`
	Quests        []Quest         `json:"quests"`
	Completions   map[string]bool `json:"completions"`
	Achievements  []Achievement   `json:"achievements"`
	SelectedClass *string         `json:"selectedClass"`
	LowEnergyMode bool            `json:"lowEnergyMode"`
	LowEnergyCnt  int             `json:"lowEnergyCount"`
	Vision        string          `json:"vision,omitempty"`
	AntiVision    string          `json:"antiVision,omitempty"`
	QuestsCreated int             `json:"questsCreated"`
	LoginData     LoginData       `json:"loginData"`
	Journal       []JournalEntry  `json:"journal"`
	WeeklyReviews []WeeklyReview  `json:"weeklyReviews,omitempty"`
	TimerStats    map[string]int  `json:"timerStats"`
	ExportedAt    time.Time       `json:"exportedAt"`
}

type Quest struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Icon        string         `json:"icon,omitempty"`
	Category    string         `json:"category,omitempty"`
	XP          int            `json:"xp"`
	Target      int            `json:"target,omitempty"`
	Essential   bool           `json:"essential"`
	Frequency   string         `json:"frequency"`
	CustomDays  []int          `json:"customDays,omitempty"`
	StatRewards map[string]int `json:"stats"`
}

type Achievement struct {
	ID         string     `json:"id"`
	Condition  string     `json:"condition"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

type LoginData struct {
	LastLogin   *string `json:"lastLogin"`
	LoginStreak int     `json:"loginStreak"`
	TotalLogins int     `json:"totalLogins"`
}

type JournalEntry struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Mood       string    `json:"mood"`
	Wins       string    `json:"wins,omitempty"`
	Challenges string    `json:"challenges,omitempty"`
	Tomorrow   string    `json:"tomorrow,omitempty"`
}

type WeeklyReview struct {
	Date  string `json:"date"`
	Win   string `json:"win,omitempty"`
	Focus string `json:"focus,omitempty"`
}

// CompletionKey flattens a completion to its wire key.
func CompletionKey(questID, day string) string {
	return questID + "-" + day
}

// ParseCompletionKey splits a wire key back into quest id and day.
// Quest ids may themselves contain dashes, so the date is taken from
// the fixed-width tail.
func ParseCompletionKey(key string) (questID, day string, err error) {
	const tail = len("-2006-01-02")
	if len(key) <= tail {
		return "", "", fmt.Errorf("completion key too short: %q", key)
	}
	cut := len(key) - tail
	if key[cut] != '-' {
		return "", "", fmt.Errorf("malformed completion key: %q", key)
	}
	day = key[cut+1:]
	if _, err := time.Parse(dayLayout, day); err != nil {
		return "", "", fmt.Errorf("malformed completion date in %q: %w", key, err)
	}
	return key[:cut], day, nil
}

// Encode renders a snapshot as indented JSON.
func Encode(s *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses snapshot JSON.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}

// Build reads a player's complete state out of storage.
func Build(ctx context.Context, db Repos, username string, now time.Time) (*Snapshot, error) {
	u, err := db.Users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("no such user: %s", username)
	}
	quests, err := db.Quests.ListAll(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load quests: %w", err)
	}
	completions, err := db.Completions.ListAll(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	achievements, err := db.Achievements.ListAll(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	journal, err := db.Journal.List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}
	reviews, err := db.Reviews.List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	s := &Snapshot{
		Username:      u.Username,
		Level:         u.Level,
		XP:            u.XP,
		TotalXPEarned: u.TotalXPEarned,
		Stats: map[string]int{
			"strength":   u.StatStrength,
			"discipline": u.StatDiscipline,
			"focus":      u.StatFocus,
			"vitality":   u.StatVitality,
			"wisdom":     u.StatWisdom,
		},
		Completions:   make(map[string]bool, len(completions)),
		SelectedClass: u.SelectedClass,
		LowEnergyMode: u.LowEnergyMode,
		LowEnergyCnt:  u.LowEnergyCount,
		Vision:        u.Vision,
		AntiVision:    u.AntiVision,
		QuestsCreated: u.QuestsCreated,
		LoginData: LoginData{
			LastLogin:   u.LastLogin,
			LoginStreak: u.LoginStreak,
			TotalLogins: u.TotalLogins,
		},
		TimerStats: map[string]int{
			"study":      u.TimerStudy,
			"exercise":   u.TimerExercise,
			"meditation": u.TimerMeditation,
			"speaking":   u.TimerSpeaking,
		},
		ExportedAt: now,
	}
	for _, q := range quests {
		s.Quests = append(s.Quests, Quest{
			ID:          q.ID,
			Name:        q.Name,
			Icon:        q.Icon,
			Category:    q.Category,
			XP:          q.XPBase,
			Target:      q.Target,
			Essential:   q.Essential,
			Frequency:   q.Frequency,
			CustomDays:  q.CustomDays,
			StatRewards: q.StatRewards,
		})
	}
	for _, c := range completions {
		s.Completions[CompletionKey(c.QuestID, c.Day)] = true
	}
	for _, a := range achievements {
		s.Achievements = append(s.Achievements, Achievement{
			ID:         a.ID,
			Condition:  a.Condition,
			Unlocked:   a.Unlocked,
			UnlockedAt: a.UnlockedAt,
		})
	}
	for _, e := range journal {
		s.Journal = append(s.Journal, JournalEntry{
			ID:         e.ID,
			Date:       e.Date,
			Mood:       e.Mood,
			Wins:       e.Wins,
			Challenges: e.Challenges,
			Tomorrow:   e.Tomorrow,
		})
	}
	for _, r := range reviews {
		s.WeeklyReviews = append(s.WeeklyReviews, WeeklyReview{
			Date:  r.Day,
			Win:   r.Win,
			Focus: r.Focus,
		})
	}
	return s, nil
}

// Repos bundles the storage accessors Build reads from.
type Repos struct {
	Users        *storage.UserRepo
	Quests       *storage.QuestRepo
	Completions  *storage.CompletionRepo
	Achievements *storage.AchievementRepo
	Journal      *storage.JournalRepo
	Reviews      *storage.ReviewRepo
}

// NewRepos builds the accessor bundle over one database handle.
func NewRepos(db *sql.DB) Repos {
	return Repos{
		Users:        storage.NewUserRepo(db),
		Quests:       storage.NewQuestRepo(db),
		Completions:  storage.NewCompletionRepo(db),
		Achievements: storage.NewAchievementRepo(db),
		Journal:      storage.NewJournalRepo(db),
		Reviews:      storage.NewReviewRepo(db),
	}
}
