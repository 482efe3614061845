package storage

import "time"

type User struct {
	Username      string
	Level         int
	XP            int
	TotalXPEarned int

	StatStrength   int
	StatDiscipline int
	StatFocus      int
	StatVitality   int
	StatWisdom     int

	SelectedClass  *string
	LowEnergyMode  bool
	LowEnergyCount int
	Vision         string
	AntiVision     string
	QuestsCreated  int

	LastLogin   *string // YYYY-MM-DD
	LoginStreak int
	TotalLogins int

	LastPerfectDay   *string
	LastWeeklyReview *string

	TimerStudy      int // seconds
	TimerExercise   int
	TimerMeditation int
	TimerSpeaking   int
}

type Quest struct {
	ID          string
	Username    string
	Name        string
	Icon        string
	Category    string
	XPBase      int
	Target      int
	Essential   bool
	Frequency   string
	CustomDays  []int          // weekday indices, 0=Sunday
	StatRewards map[string]int // stat name -> increment
	CreatedAt   time.Time
}

type Completion struct {
	ID          int64
	Username    string
	QuestID     string
	Day         string // YYYY-MM-DD
	XPAwarded   int
	CompletedAt time.Time
}

type AchievementState struct {
	Username   string
	ID         string
	Condition  string
	Unlocked   bool
	UnlockedAt *time.Time
}

type JournalEntry struct {
	ID         string
	Username   string
	Date       time.Time
	Mood       string
	Wins       string
	Challenges string
	Tomorrow   string
}

type WeeklyReview struct {
	Username string
	Day      string
	Win      string
	Focus    string
}
