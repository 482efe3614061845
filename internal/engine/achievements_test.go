package engine

import "testing"

func TestCatalogSize(t *testing.T) {
	if got := len(Catalog()); got != 45 {
		t.Fatalf("catalog size = %d, want 45", got)
	}
	seen := make(map[string]bool)
	for _, a := range Catalog() {
		if seen[a.ID] {
			t.Fatalf("duplicate achievement id %s", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestEvaluateConditionsThresholds(t *testing.T) {
	in := AchievementInput{
		TotalCompletions: 10,
		CurrentStreak:    7,
		TotalXPEarned:    1000,
		Level:            5,
		Stats:            map[Stat]int{StatStrength: 50},
	}
	conds := EvaluateConditions(in)

	for _, key := range []string{"complete_1_quest", "complete_10_quests", "streak_7", "xp_1000", "level_5", "strength_50"} {
		if !conds[key] {
			t.Fatalf("expected %s satisfied", key)
		}
	}
	for _, key := range []string{"streak_14", "xp_10000", "level_10", "strength_100", "morning_30"} {
		if conds[key] {
			t.Fatalf("expected %s unsatisfied", key)
		}
	}
}

func TestEvaluateConditionsUnreachable(t *testing.T) {
	// perfect_week, perfect_month and comeback have no evaluator
	// entry, so they can never unlock.
	in := AchievementInput{
		TotalCompletions: 10000,
		CurrentStreak:    365,
		TotalXPEarned:    1 << 20,
	}
	conds := EvaluateConditions(in)
	for _, key := range []string{"perfect_week", "perfect_month", "comeback"} {
		if conds[key] {
			t.Fatalf("%s should never be satisfied", key)
		}
	}
}

func TestEvaluateConditionsTimers(t *testing.T) {
	in := AchievementInput{
		StudySeconds:      10 * 3600,
		ExerciseSeconds:   20 * 60,
		MeditationSeconds: 29 * 60,
	}
	conds := EvaluateConditions(in)
	if !conds["study_10h"] {
		t.Fatal("expected study_10h satisfied at exactly 10 hours")
	}
	if !conds["exercise_20"] {
		t.Fatal("expected exercise_20 satisfied at 20 minutes")
	}
	if conds["meditate_30"] {
		t.Fatal("meditate_30 should need 30 minutes")
	}
}

func TestEvaluateConditionsAllStats(t *testing.T) {
	stats := map[Stat]int{
		StatStrength:   50,
		StatDiscipline: 50,
		StatFocus:      50,
		StatVitality:   50,
		StatWisdom:     49,
	}
	conds := EvaluateConditions(AchievementInput{Stats: stats})
	if conds["all_stats_50"] {
		t.Fatal("one stat below 50 should fail all_stats_50")
	}
	stats[StatWisdom] = 50
	conds = EvaluateConditions(AchievementInput{Stats: stats})
	if !conds["all_stats_50"] {
		t.Fatal("expected all_stats_50 satisfied")
	}
}

func TestEvaluateConditionsProfileFlags(t *testing.T) {
	conds := EvaluateConditions(AchievementInput{
		VisionSet:      true,
		ClassChosen:    true,
		QuestsCreated:  1,
		LowEnergyCount: 5,
		TotalLogins:    30,
	})
	for _, key := range []string{"vision_set", "class_change", "custom_quest", "low_energy_5", "login_30"} {
		if !conds[key] {
			t.Fatalf("expected %s satisfied", key)
		}
	}
}
