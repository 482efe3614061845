package engine

// Achievement is a static catalog entry. Unlock state lives in
// storage; the catalog only describes what can be earned.
type Achievement struct {
	ID        string
	Name      string
	Icon      string
	Desc      string
	Condition string
	Hidden    bool
}

// Catalog returns every earnable achievement, in display order.
func Catalog() []Achievement {
	return []Achievement{
		{ID: "a1", Name: "First Step", Icon: "👣", Desc: "Complete your first quest", Condition: "complete_1_quest"},
		{ID: "a2", Name: "Getting Started", Icon: "🌱", Desc: "Complete 10 quests total", Condition: "complete_10_quests"},
		{ID: "a3", Name: "Consistent", Icon: "📅", Desc: "Complete quests 3 days in a row", Condition: "streak_3"},
		{ID: "a4", Name: "Week Warrior", Icon: "🔥", Desc: "Complete quests 7 days in a row", Condition: "streak_7"},
		{ID: "a5", Name: "Two Weeks Strong", Icon: "💪", Desc: "Complete quests 14 days in a row", Condition: "streak_14"},
		{ID: "a6", Name: "Monthly Master", Icon: "📆", Desc: "Complete quests 30 days in a row", Condition: "streak_30"},
		{ID: "a7", Name: "Century", Icon: "💯", Desc: "Complete quests 100 days in a row", Condition: "streak_100"},
		{ID: "a8", Name: "Level 5", Icon: "⭐", Desc: "Reach character level 5", Condition: "level_5"},
		{ID: "a9", Name: "Level 10", Icon: "⭐⭐", Desc: "Reach character level 10", Condition: "level_10"},
		{ID: "a10", Name: "Level 20", Icon: "🌟", Desc: "Reach character level 20", Condition: "level_20"},
		{ID: "a11", Name: "Strength Builder", Icon: "🏋️", Desc: "Reach 50 Strength", Condition: "strength_50"},
		{ID: "a12", Name: "Strength Master", Icon: "💪", Desc: "Reach 100 Strength", Condition: "strength_100"},
		{ID: "a13", Name: "Disciplined Mind", Icon: "🎯", Desc: "Reach 50 Discipline", Condition: "discipline_50"},
		{ID: "a14", Name: "Discipline Master", Icon: "🎖️", Desc: "Reach 100 Discipline", Condition: "discipline_100"},
		{ID: "a15", Name: "Focused", Icon: "🧠", Desc: "Reach 50 Focus", Condition: "focus_50"},
		{ID: "a16", Name: "Focus Master", Icon: "🔮", Desc: "Reach 100 Focus", Condition: "focus_100"},
		{ID: "a17", Name: "Vital", Icon: "❤️", Desc: "Reach 50 Vitality", Condition: "vitality_50"},
		{ID: "a18", Name: "Vitality Master", Icon: "💖", Desc: "Reach 100 Vitality", Condition: "vitality_100"},
		{ID: "a19", Name: "Wise", Icon: "📚", Desc: "Reach 50 Wisdom", Condition: "wisdom_50"},
		{ID: "a20", Name: "Wisdom Master", Icon: "🦉", Desc: "Reach 100 Wisdom", Condition: "wisdom_100"},
		{ID: "a21", Name: "Productive Day", Icon: "✅", Desc: "Complete 5 quests in one day", Condition: "daily_5"},
		{ID: "a22", Name: "Super Productive", Icon: "🚀", Desc: "Complete 10 quests in one day", Condition: "daily_10"},
		{ID: "a23", Name: "First Journal", Icon: "📖", Desc: "Write your first journal entry", Condition: "journal_1"},
		{ID: "a24", Name: "Reflective", Icon: "💭", Desc: "Write 7 journal entries", Condition: "journal_7"},
		{ID: "a25", Name: "Dedicated Writer", Icon: "✍️", Desc: "Write 30 journal entries", Condition: "journal_30"},
		{ID: "a26", Name: "Study Beast", Icon: "📚", Desc: "Study for 10 hours total", Condition: "study_10h"},
		{ID: "a27", Name: "Scholar", Icon: "🎓", Desc: "Study for 50 hours total", Condition: "study_50h"},
		{ID: "a28", Name: "Gym Rat", Icon: "💪", Desc: "Exercise 20 times", Condition: "exercise_20"},
		{ID: "a29", Name: "Fitness Enthusiast", Icon: "🏃", Desc: "Exercise 50 times", Condition: "exercise_50"},
		{ID: "a30", Name: "Zen Master", Icon: "🧘", Desc: "Meditate 30 times", Condition: "meditate_30"},
		{ID: "a31", Name: "Inner Peace", Icon: "☮️", Desc: "Meditate 100 times", Condition: "meditate_100"},
		{ID: "a32", Name: "Early Bird", Icon: "🌅", Desc: "Complete morning routine 30 times", Condition: "morning_30"},
		{ID: "a33", Name: "Perfect Week", Icon: "🏆", Desc: "Complete all quests for 7 days straight", Condition: "perfect_week"},
		{ID: "a34", Name: "Perfect Month", Icon: "👑", Desc: "Complete all quests for 30 days", Condition: "perfect_month"},
		{ID: "a35", Name: "XP Hunter", Icon: "💰", Desc: "Earn 1000 XP total", Condition: "xp_1000"},
		{ID: "a36", Name: "XP Master", Icon: "💎", Desc: "Earn 10000 XP total", Condition: "xp_10000"},
		{ID: "a37", Name: "Comeback Kid", Icon: "🔄", Desc: "Restart after breaking a streak", Condition: "comeback"},
		{ID: "a38", Name: "Dedicated", Icon: "💎", Desc: "Check in for 30 days", Condition: "login_30"},
		{ID: "a39", Name: "Vision Set", Icon: "🎯", Desc: "Set your vision and anti-vision", Condition: "vision_set"},
		{ID: "a40", Name: "Class Changed", Icon: "⚔️", Desc: "Complete class change", Condition: "class_change", Hidden: true},
		{ID: "a41", Name: "Quest Creator", Icon: "🛠️", Desc: "Create your first custom quest", Condition: "custom_quest"},
		{ID: "a42", Name: "Organized", Icon: "📋", Desc: "Create 10 custom quests", Condition: "custom_quest_10"},
		{ID: "a43", Name: "Low Energy Warrior", Icon: "🛡️", Desc: "Use low energy mode 5 times", Condition: "low_energy_5"},
		{ID: "a44", Name: "All Stats 50", Icon: "🌟", Desc: "Reach 50 in all stats", Condition: "all_stats_50", Hidden: true},
		{ID: "a45", Name: "Ascension Ready", Icon: "✨", Desc: "Reach 100 in all core stats", Condition: "all_stats_100", Hidden: true},
	}
}

// AchievementByID looks up a catalog entry.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Catalog() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// AchievementInput is the progress snapshot conditions are judged
// against.
type AchievementInput struct {
	TotalCompletions  int
	CurrentStreak     int
	TodayCount        int
	JournalCount      int
	StudySeconds      int
	ExerciseSeconds   int
	MeditationSeconds int
	Level             int
	TotalXPEarned     int
	TotalLogins       int
	Stats             map[Stat]int
	VisionSet         bool
	ClassChosen       bool
	QuestsCreated     int
	LowEnergyCount    int
}

// EvaluateConditions maps every known condition key to whether the
// snapshot satisfies it. Keys the map lacks never unlock.
func EvaluateConditions(in AchievementInput) map[string]bool {
	studyHours := in.StudySeconds / 3600
	exerciseCount := in.ExerciseSeconds / 60
	meditateCount := in.MeditationSeconds / 60

	allStatsAtLeast := func(min int) bool {
		for _, stat := range AllStats() {
			if in.Stats[stat] < min {
				return false
			}
		}
		return true
	}

	return map[string]bool{
		"complete_1_quest":   in.TotalCompletions >= 1,
		"complete_10_quests": in.TotalCompletions >= 10,
		"streak_3":           in.CurrentStreak >= 3,
		"streak_7":           in.CurrentStreak >= 7,
		"streak_14":          in.CurrentStreak >= 14,
		"streak_30":          in.CurrentStreak >= 30,
		"streak_100":         in.CurrentStreak >= 100,
		"level_5":            in.Level >= 5,
		"level_10":           in.Level >= 10,
		"level_20":           in.Level >= 20,
		"strength_50":        in.Stats[StatStrength] >= 50,
		"strength_100":       in.Stats[StatStrength] >= 100,
		"discipline_50":      in.Stats[StatDiscipline] >= 50,
		"discipline_100":     in.Stats[StatDiscipline] >= 100,
		"focus_50":           in.Stats[StatFocus] >= 50,
		"focus_100":          in.Stats[StatFocus] >= 100,
		"vitality_50":        in.Stats[StatVitality] >= 50,
		"vitality_100":       in.Stats[StatVitality] >= 100,
		"wisdom_50":          in.Stats[StatWisdom] >= 50,
		"wisdom_100":         in.Stats[StatWisdom] >= 100,
		"daily_5":            in.TodayCount >= 5,
		"daily_10":           in.TodayCount >= 10,
		"journal_1":          in.JournalCount >= 1,
		"journal_7":          in.JournalCount >= 7,
		"journal_30":         in.JournalCount >= 30,
		"study_10h":          studyHours >= 10,
		"study_50h":          studyHours >= 50,
		"exercise_20":        exerciseCount >= 20,
		"exercise_50":        exerciseCount >= 50,
		"meditate_30":        meditateCount >= 30,
		"meditate_100":       meditateCount >= 100,
		"morning_30":         in.TotalCompletions >= 30,
		"xp_1000":            in.TotalXPEarned >= 1000,
		"xp_10000":           in.TotalXPEarned >= 10000,
		"login_30":           in.TotalLogins >= 30,
		"vision_set":         in.VisionSet,
		"class_change":       in.ClassChosen,
		"custom_quest":       in.QuestsCreated >= 1,
		"custom_quest_10":    in.QuestsCreated >= 10,
		"low_energy_5":       in.LowEnergyCount >= 5,
		"all_stats_50":       allStatsAtLeast(50),
		"all_stats_100":      allStatsAtLeast(100),
	}
}
