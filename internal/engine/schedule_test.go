package engine

import (
	"testing"
	"time"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestScheduledTodayCustom(t *testing.T) {
	q := storage.Quest{Frequency: string(FrequencyCustom), CustomDays: []int{1, 3, 5}} // Mon Wed Fri
	if !ScheduledToday(q, day(2026, time.March, 18)) {                                // Wednesday
		t.Fatal("expected scheduled on Wednesday")
	}
	if ScheduledToday(q, day(2026, time.March, 19)) { // Thursday
		t.Fatal("expected not scheduled on Thursday")
	}
}

func TestSatisfiedDaily(t *testing.T) {
	q := storage.Quest{ID: "q", Frequency: string(FrequencyDaily)}
	log := NewCompletionLog()
	now := day(2026, time.March, 18)
	if SatisfiedForPeriod(q, now, log) {
		t.Fatal("fresh daily quest should not be satisfied")
	}
	log.Add("q", "2026-03-18")
	if !SatisfiedForPeriod(q, now, log) {
		t.Fatal("daily quest should be satisfied after today's completion")
	}
	// Yesterday's completion does not carry over.
	if SatisfiedForPeriod(q, day(2026, time.March, 19), log) {
		t.Fatal("daily quest should reset the next day")
	}
}

func TestSatisfiedWeeklyResetsOnSunday(t *testing.T) {
	q := storage.Quest{ID: "q", Frequency: string(FrequencyWeekly)}
	log := NewCompletionLog()
	log.Add("q", "2026-03-16") // Monday

	if !SatisfiedForPeriod(q, day(2026, time.March, 20), log) { // Friday same week
		t.Fatal("weekly quest should stay satisfied through the week")
	}
	if !SatisfiedForPeriod(q, day(2026, time.March, 21), log) { // Saturday
		t.Fatal("weekly quest should stay satisfied on Saturday")
	}
	if SatisfiedForPeriod(q, day(2026, time.March, 22), log) { // next Sunday
		t.Fatal("weekly quest should reset on Sunday")
	}
}

func TestSatisfiedBiweeklyFixedGrid(t *testing.T) {
	q := storage.Quest{ID: "q", Frequency: string(FrequencyBiweekly)}
	log := NewCompletionLog()

	// The 14-day period containing 2026-03-18 runs 03-09 through
	// 03-22 on the fixed grid anchored at 2024-01-01.
	start := biweekStart(day(2026, time.March, 18))
	if DayKey(start) != "2026-03-09" {
		t.Fatalf("period start = %s, want 2026-03-09", DayKey(start))
	}

	log.Add("q", "2026-03-09")
	if !SatisfiedForPeriod(q, day(2026, time.March, 18), log) {
		t.Fatal("biweekly quest should be satisfied within its period")
	}
	if !SatisfiedForPeriod(q, day(2026, time.March, 22), log) {
		t.Fatal("biweekly quest should be satisfied on the period's last day")
	}
	if SatisfiedForPeriod(q, day(2026, time.March, 23), log) {
		t.Fatal("biweekly quest should reset in the next period")
	}
}

func TestSatisfiedMonthly(t *testing.T) {
	q := storage.Quest{ID: "q", Frequency: string(FrequencyMonthly)}
	log := NewCompletionLog()
	log.Add("q", "2026-03-02")

	if !SatisfiedForPeriod(q, day(2026, time.March, 31), log) {
		t.Fatal("monthly quest should be satisfied within the month")
	}
	if SatisfiedForPeriod(q, day(2026, time.April, 1), log) {
		t.Fatal("monthly quest should reset next month")
	}
}

func TestSatisfiedCustomVacuousOffSchedule(t *testing.T) {
	q := storage.Quest{ID: "q", Frequency: string(FrequencyCustom), CustomDays: []int{1}} // Monday only
	log := NewCompletionLog()

	// Thursday is off-schedule, so the quest counts as satisfied
	// without any completion.
	if !SatisfiedForPeriod(q, day(2026, time.March, 19), log) {
		t.Fatal("custom quest should be vacuously satisfied off-schedule")
	}
	// Monday requires a completion.
	if SatisfiedForPeriod(q, day(2026, time.March, 16), log) {
		t.Fatal("custom quest should require completion on a scheduled day")
	}
	log.Add("q", "2026-03-16")
	if !SatisfiedForPeriod(q, day(2026, time.March, 16), log) {
		t.Fatal("custom quest should be satisfied after completing on schedule")
	}
}

func TestMonthlyCompletionCount(t *testing.T) {
	log := NewCompletionLog()
	log.Add("q", "2026-03-01")
	log.Add("q", "2026-03-15")
	log.Add("q", "2026-02-28")
	if got := MonthlyCompletionCount("q", day(2026, time.March, 20), log); got != 2 {
		t.Fatalf("monthly count = %d, want 2", got)
	}
}
