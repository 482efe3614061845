package engine

import (
	"sort"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

// CompletionLog is an in-memory index over the completion history,
// keyed both by day and by quest so schedule and streak checks stay
// O(1) per lookup.
type CompletionLog struct {
	byDay   map[string]map[string]bool
	byQuest map[string]map[string]bool
	total   int
}

func NewCompletionLog() *CompletionLog {
	return &CompletionLog{
		byDay:   make(map[string]map[string]bool),
		byQuest: make(map[string]map[string]bool),
	}
}

// BuildCompletionLog indexes completion records loaded from storage.
func BuildCompletionLog(records []storage.Completion) *CompletionLog {
	log := NewCompletionLog()
	for _, rec := range records {
		log.Add(rec.QuestID, rec.Day)
	}
	return log
}

// Add records a quest completion on a day. Duplicate entries are
// ignored, matching the storage layer's uniqueness constraint.
func (l *CompletionLog) Add(questID, day string) bool {
	if l.byDay[day][questID] {
		return false
	}
	if l.byDay[day] == nil {
		l.byDay[day] = make(map[string]bool)
	}
	if l.byQuest[questID] == nil {
		l.byQuest[questID] = make(map[string]bool)
	}
	l.byDay[day][questID] = true
	l.byQuest[questID][day] = true
	l.total++
	return true
}

// Has reports whether a quest was completed on a day.
func (l *CompletionLog) Has(questID, day string) bool {
	return l.byDay[day][questID]
}

// CountOnDay returns how many quests were completed on a day.
func (l *CompletionLog) CountOnDay(day string) int {
	return len(l.byDay[day])
}

// QuestDays returns the set of days a quest was completed on.
func (l *CompletionLog) QuestDays(questID string) map[string]bool {
	return l.byQuest[questID]
}

// Days returns every day with at least one completion, sorted.
func (l *CompletionLog) Days() []string {
	days := make([]string, 0, len(l.byDay))
	for day := range l.byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// Total returns the number of recorded completions.
func (l *CompletionLog) Total() int {
	return l.total
}
