package engine

import (
	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

const (
	// firstOfDayRate is the bonus share for the first completion of
	// a day.
	firstOfDayRate = 0.5
	// ComebackBonusXP is the flat reward for showing up again after a
	// missed day.
	ComebackBonusXP = 15
	// PerfectDayBonusXP is awarded once per day when every scheduled
	// quest is done.
	PerfectDayBonusXP = 20

	// JournalEntryXP rewards writing a journal entry.
	JournalEntryXP = 5
	// WeeklyReviewXP rewards filing a weekly review.
	WeeklyReviewXP = 50

	// LoginBaseXP is the daily check-in reward floor.
	LoginBaseXP = 10
	// LoginStreakBonusCap limits the check-in streak bonus.
	LoginStreakBonusCap = 10
)

// XPThreshold is the XP required to clear the given level.
func XPThreshold(level int) int {
	return level * 100
}

// StreakMultiplier maps a streak length to its XP bonus rate.
func StreakMultiplier(streak int) float64 {
	switch {
	case streak >= 30:
		return 0.75
	case streak >= 14:
		return 0.50
	case streak >= 7:
		return 0.25
	case streak >= 3:
		return 0.10
	default:
		return 0
	}
}

// XPBreakdown itemizes the reward for one quest completion.
type XPBreakdown struct {
	Base          int
	FirstOfDay    int
	StreakBonus   int
	ComebackBonus int
	Total         int
}

// ComputeQuestXP prices a completion. Each bonus is floored as it is
// applied, and the streak bonus compounds on the running total rather
// than the base.
func ComputeQuestXP(q storage.Quest, firstOfDay bool, streak int, missedYesterday bool) XPBreakdown {
	b := XPBreakdown{Base: q.XPBase}
	total := q.XPBase
	if firstOfDay {
		b.FirstOfDay = int(float64(q.XPBase) * firstOfDayRate)
		total += b.FirstOfDay
	}
	if mult := StreakMultiplier(streak); mult > 0 {
		b.StreakBonus = int(float64(total) * mult)
		total += b.StreakBonus
	}
	if firstOfDay && missedYesterday {
		b.ComebackBonus = ComebackBonusXP
		total += b.ComebackBonus
	}
	b.Total = total
	return b
}

// GrantXP credits XP to both the spendable pool and the lifetime
// counter.
func GrantXP(u *storage.User, xp int) {
	u.XP += xp
	u.TotalXPEarned += xp
}

// Settle converts banked XP into levels and grants the class stat
// bonus per level gained. Every level-up within one settle consumes
// the threshold in force when the XP arrived, so a single large grant
// cascades at a fixed cost per level; leftover XP stays banked. It
// returns the number of levels gained.
func Settle(u *storage.User) int {
	gained := 0
	cost := XPThreshold(u.Level)
	for u.XP >= cost {
		u.XP -= cost
		u.Level++
		gained++
		applyLevelUpStatBonus(u)
	}
	return gained
}

// applyLevelUpStatBonus raises every stat on level-up, scaled by the
// class multiplier and clamped to the active cap.
func applyLevelUpStatBonus(u *storage.User) {
	for _, stat := range AllStats() {
		bonus := int(2 * classMultiplier(u.SelectedClass, stat))
		addStat(u, stat, bonus)
	}
}

// LoginBonusXP prices the daily check-in for a given login streak.
func LoginBonusXP(loginStreak int) int {
	bonus := loginStreak - 1
	if bonus < 0 {
		bonus = 0
	}
	if bonus > LoginStreakBonusCap {
		bonus = LoginStreakBonusCap
	}
	return LoginBaseXP + bonus
}
