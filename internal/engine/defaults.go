package engine

import "github.com/itskrishnabajaj/LevelUp/internal/storage"

// DefaultQuests returns the starter quest set seeded into a fresh
// account.
func DefaultQuests() []storage.Quest {
	return []storage.Quest{
		{
			ID: "q1", Name: "Morning Pushups", Icon: "💪", Category: "health",
			XPBase: 15, Target: 30, Frequency: string(FrequencyDaily),
			StatRewards: map[string]int{"strength": 1},
		},
		{
			ID: "q2", Name: "Strength Training", Icon: "🏋️", Category: "health",
			XPBase: 20, Target: 20, Frequency: string(FrequencyDaily),
			StatRewards: map[string]int{"strength": 2},
		},
		{
			ID: "q3", Name: "Daily Hygiene", Icon: "🚿", Category: "health",
			XPBase: 10, Target: 30, Essential: true, Frequency: string(FrequencyDaily),
			StatRewards: map[string]int{"vitality": 1},
		},
		{
			ID: "q4", Name: "MBA Study - 2 Hours", Icon: "📚", Category: "study",
			XPBase: 30, Target: 30, Frequency: string(FrequencyDaily),
			StatRewards: map[string]int{"wisdom": 2, "focus": 1},
		},
		{
			ID: "q5", Name: "Mock Test Practice", Icon: "📝", Category: "study",
			XPBase: 30, Target: 15, Frequency: string(FrequencyDaily),
			StatRewards: map[string]int{"wisdom": 1, "focus": 2},
		},
		{
			ID: "q6", Name: "Meditation - 15 min", Icon: "🧘", Category: "mindset",
			XPBase: 15, Target: 30, Frequency: string(FrequencyDaily),
			StatRewards: map[string]int{"focus": 2, "vitality": 1},
		},
		{
			ID: "q7", Name: "Slow Speech Practice", Icon: "🗣️", Category: "mindset",
			XPBase: 20, Target: 30, Frequency: string(FrequencyDaily),
			StatRewards: map[string]int{"discipline": 2},
		},
	}
}
