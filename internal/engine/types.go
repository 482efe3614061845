package engine

import (
	"fmt"
	"strings"
)

// Stat is one of the five growth stats a quest can reward.
type Stat string

const (
	StatStrength   Stat = "strength"
	StatDiscipline Stat = "discipline"
	StatFocus      Stat = "focus"
	StatVitality   Stat = "vitality"
	StatWisdom     Stat = "wisdom"
)

// DefaultStat is assigned when a quest has no stat rewards.
const DefaultStat Stat = StatStrength

func AllStats() []Stat {
	return []Stat{StatStrength, StatDiscipline, StatFocus, StatVitality, StatWisdom}
}

func (s Stat) IsValid() bool {
	switch s {
	case StatStrength, StatDiscipline, StatFocus, StatVitality, StatWisdom:
		return true
	default:
		return false
	}
}

func ParseStat(input string) (Stat, error) {
	s := Stat(strings.TrimSpace(strings.ToLower(input)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid stat: %q", input)
	}
	return s, nil
}

// Frequency is a quest's recurrence rule.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyCustom   Frequency = "custom"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyCustom:
		return true
	default:
		return false
	}
}

func ParseFrequency(input string) (Frequency, error) {
	f := Frequency(strings.TrimSpace(strings.ToLower(input)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

// Mood tags a journal entry.
type Mood string

const (
	MoodGreat      Mood = "great"
	MoodGood       Mood = "good"
	MoodOkay       Mood = "okay"
	MoodLow        Mood = "low"
	MoodStruggling Mood = "struggling"
)

func (m Mood) IsValid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodOkay, MoodLow, MoodStruggling:
		return true
	default:
		return false
	}
}

func ParseMood(input string) (Mood, error) {
	m := Mood(strings.TrimSpace(strings.ToLower(input)))
	if !m.IsValid() {
		return "", fmt.Errorf("invalid mood: %q", input)
	}
	return m, nil
}
