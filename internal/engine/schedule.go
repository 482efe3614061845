package engine

import (
	"strings"
	"time"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

// ScheduledToday reports whether a quest expects attention on the
// given day. Non-custom quests are always in play; custom quests only
// on their chosen weekdays.
func ScheduledToday(q storage.Quest, now time.Time) bool {
	if Frequency(q.Frequency) != FrequencyCustom {
		return true
	}
	wd := int(now.Weekday())
	for _, d := range q.CustomDays {
		if d == wd {
			return true
		}
	}
	return false
}

// SatisfiedForPeriod reports whether a quest's recurrence requirement
// is already met for the period containing now.
func SatisfiedForPeriod(q storage.Quest, now time.Time, log *CompletionLog) bool {
	switch Frequency(q.Frequency) {
	case FrequencyWeekly:
		return completedSince(q.ID, weekStart(now), now, log)
	case FrequencyBiweekly:
		return completedSince(q.ID, biweekStart(now), now, log)
	case FrequencyMonthly:
		return completedInMonth(q.ID, MonthKey(now), log)
	case FrequencyCustom:
		if !ScheduledToday(q, now) {
			// Off-schedule days count as satisfied.
			return true
		}
		return log.Has(q.ID, DayKey(now))
	default: // daily
		return log.Has(q.ID, DayKey(now))
	}
}

// completedSince scans days from start through now inclusive.
func completedSince(questID string, start, now time.Time, log *CompletionLog) bool {
	end := startOfDay(now)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if log.Has(questID, DayKey(d)) {
			return true
		}
	}
	return false
}

func completedInMonth(questID, month string, log *CompletionLog) bool {
	for day := range log.QuestDays(questID) {
		if strings.HasPrefix(day, month) {
			return true
		}
	}
	return false
}

// MonthlyCompletionCount counts a quest's completions in the month
// containing now. Used by the target display for monthly quests.
func MonthlyCompletionCount(questID string, now time.Time, log *CompletionLog) int {
	month := MonthKey(now)
	n := 0
	for day := range log.QuestDays(questID) {
		if strings.HasPrefix(day, month) {
			n++
		}
	}
	return n
}
