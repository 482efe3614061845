package engine

import (
	"testing"
	"time"
)

func TestCurrentStreakCountsBackFromToday(t *testing.T) {
	log := NewCompletionLog()
	log.Add("a", "2026-03-18")
	log.Add("b", "2026-03-17")
	log.Add("a", "2026-03-16")

	if got := CurrentStreak(log, day(2026, time.March, 18)); got != 3 {
		t.Fatalf("streak = %d, want 3", got)
	}
}

func TestCurrentStreakZeroWithoutToday(t *testing.T) {
	log := NewCompletionLog()
	log.Add("a", "2026-03-17")
	log.Add("a", "2026-03-16")

	// Nothing completed today yet, so the streak reads zero even
	// though yesterday was active.
	if got := CurrentStreak(log, day(2026, time.March, 18)); got != 0 {
		t.Fatalf("streak = %d, want 0", got)
	}
}

func TestCurrentStreakBreaksOnGap(t *testing.T) {
	log := NewCompletionLog()
	log.Add("a", "2026-03-18")
	log.Add("a", "2026-03-16") // 03-17 missed

	if got := CurrentStreak(log, day(2026, time.March, 18)); got != 1 {
		t.Fatalf("streak = %d, want 1", got)
	}
}

func TestQuestStreakIndependentOfOtherQuests(t *testing.T) {
	log := NewCompletionLog()
	log.Add("a", "2026-03-18")
	log.Add("a", "2026-03-17")
	log.Add("b", "2026-03-16")

	if got := QuestStreak("a", log, day(2026, time.March, 18)); got != 2 {
		t.Fatalf("quest streak = %d, want 2", got)
	}
	if got := QuestStreak("b", log, day(2026, time.March, 18)); got != 0 {
		t.Fatalf("quest streak = %d, want 0", got)
	}
}

func TestLongestStreak(t *testing.T) {
	log := NewCompletionLog()
	for _, d := range []string{"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04", "2026-03-10", "2026-03-11"} {
		log.Add("a", d)
	}
	if got := LongestStreak(log); got != 4 {
		t.Fatalf("longest streak = %d, want 4", got)
	}
}

func TestLongestStreakEmpty(t *testing.T) {
	if got := LongestStreak(NewCompletionLog()); got != 0 {
		t.Fatalf("longest streak = %d, want 0", got)
	}
}
