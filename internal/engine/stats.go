package engine

import "github.com/itskrishnabajaj/LevelUp/internal/storage"

// StatValue reads a stat off the user record.
func StatValue(u *storage.User, stat Stat) int {
	switch stat {
	case StatStrength:
		return u.StatStrength
	case StatDiscipline:
		return u.StatDiscipline
	case StatFocus:
		return u.StatFocus
	case StatVitality:
		return u.StatVitality
	case StatWisdom:
		return u.StatWisdom
	default:
		return 0
	}
}

func setStat(u *storage.User, stat Stat, value int) {
	switch stat {
	case StatStrength:
		u.StatStrength = value
	case StatDiscipline:
		u.StatDiscipline = value
	case StatFocus:
		u.StatFocus = value
	case StatVitality:
		u.StatVitality = value
	case StatWisdom:
		u.StatWisdom = value
	}
}

// addStat raises a stat, clamping at the cap the user's class allows.
func addStat(u *storage.User, stat Stat, delta int) {
	cap := statCapFor(u.SelectedClass)
	v := StatValue(u, stat) + delta
	if v > cap {
		v = cap
	}
	setStat(u, stat, v)
}

// ApplyStatRewards applies a quest's stat rewards with the class
// multiplier, flooring each scaled increment.
func ApplyStatRewards(u *storage.User, q storage.Quest) map[Stat]int {
	applied := make(map[Stat]int)
	for name, incr := range q.StatRewards {
		stat := Stat(name)
		if !stat.IsValid() || incr <= 0 {
			continue
		}
		scaled := int(float64(incr) * classMultiplier(u.SelectedClass, stat))
		addStat(u, stat, scaled)
		applied[stat] = scaled
	}
	return applied
}

// allStatsMaxed reports whether every base stat has hit the pre-class
// cap, the gate for choosing a class.
func allStatsMaxed(u *storage.User) bool {
	for _, stat := range AllStats() {
		if StatValue(u, stat) < BaseStatCap {
			return false
		}
	}
	return true
}
