package engine

import (
	"sort"
	"time"
)

// streakScanLimit bounds backward day scans.
const streakScanLimit = 365

// CurrentStreak counts consecutive days with at least one completion,
// walking backward from today. Today itself only extends the streak
// once something has been completed on it.
func CurrentStreak(log *CompletionLog, now time.Time) int {
	streak := 0
	day := startOfDay(now)
	for i := 0; i < streakScanLimit; i++ {
		if log.CountOnDay(DayKey(day)) == 0 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// QuestStreak counts consecutive days a single quest was completed,
// walking backward from today.
func QuestStreak(questID string, log *CompletionLog, now time.Time) int {
	streak := 0
	day := startOfDay(now)
	for i := 0; i < streakScanLimit; i++ {
		if !log.Has(questID, DayKey(day)) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak finds the longest run of consecutive active days in
// the whole history.
func LongestStreak(log *CompletionLog) int {
	days := log.Days()
	if len(days) == 0 {
		return 0
	}
	dates := make([]time.Time, 0, len(days))
	for _, day := range days {
		d, err := parseDay(day)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
