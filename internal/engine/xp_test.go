package engine

import (
	"testing"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

func TestXPThreshold(t *testing.T) {
	cases := []struct{ level, want int }{
		{1, 100},
		{2, 200},
		{5, 500},
		{10, 1000},
	}
	for _, c := range cases {
		if got := XPThreshold(c.level); got != c.want {
			t.Fatalf("XPThreshold(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestStreakMultiplier(t *testing.T) {
	cases := []struct {
		streak int
		want   float64
	}{
		{0, 0}, {1, 0}, {2, 0},
		{3, 0.10}, {6, 0.10},
		{7, 0.25}, {13, 0.25},
		{14, 0.50}, {29, 0.50},
		{30, 0.75}, {365, 0.75},
	}
	for _, c := range cases {
		if got := StreakMultiplier(c.streak); got != c.want {
			t.Fatalf("StreakMultiplier(%d) = %v, want %v", c.streak, got, c.want)
		}
	}
}

func TestComputeQuestXPBaseOnly(t *testing.T) {
	q := storage.Quest{XPBase: 20}
	b := ComputeQuestXP(q, false, 0, false)
	if b.Total != 20 {
		t.Fatalf("total = %d, want 20", b.Total)
	}
}

func TestComputeQuestXPFirstAndStreak(t *testing.T) {
	// 20 base, +10 first-of-day, then +floor(30*0.25) on the running
	// total for a 10-day streak.
	q := storage.Quest{XPBase: 20}
	b := ComputeQuestXP(q, true, 10, false)
	if b.FirstOfDay != 10 {
		t.Fatalf("first-of-day bonus = %d, want 10", b.FirstOfDay)
	}
	if b.StreakBonus != 7 {
		t.Fatalf("streak bonus = %d, want 7", b.StreakBonus)
	}
	if b.Total != 37 {
		t.Fatalf("total = %d, want 37", b.Total)
	}
}

func TestComputeQuestXPComeback(t *testing.T) {
	q := storage.Quest{XPBase: 10}
	b := ComputeQuestXP(q, true, 0, true)
	if b.ComebackBonus != ComebackBonusXP {
		t.Fatalf("comeback bonus = %d, want %d", b.ComebackBonus, ComebackBonusXP)
	}
	if b.Total != 10+5+15 {
		t.Fatalf("total = %d, want 30", b.Total)
	}
	// No comeback unless it is the first completion of the day.
	b = ComputeQuestXP(q, false, 0, true)
	if b.ComebackBonus != 0 {
		t.Fatalf("comeback bonus on later completion = %d, want 0", b.ComebackBonus)
	}
}

func TestComputeQuestXPFloorsEachStep(t *testing.T) {
	// 15 base, +7 first-of-day (floored from 7.5), streak 3 adds
	// floor(22*0.10) = 2.
	q := storage.Quest{XPBase: 15}
	b := ComputeQuestXP(q, true, 3, false)
	if b.FirstOfDay != 7 {
		t.Fatalf("first-of-day bonus = %d, want 7", b.FirstOfDay)
	}
	if b.StreakBonus != 2 {
		t.Fatalf("streak bonus = %d, want 2", b.StreakBonus)
	}
	if b.Total != 24 {
		t.Fatalf("total = %d, want 24", b.Total)
	}
}

func TestSettleCascadesWithLeftover(t *testing.T) {
	u := &storage.User{Username: "t", Level: 1}
	GrantXP(u, 250)
	gained := Settle(u)
	if gained != 2 {
		t.Fatalf("levels gained = %d, want 2", gained)
	}
	if u.Level != 3 {
		t.Fatalf("level = %d, want 3", u.Level)
	}
	if u.XP != 50 {
		t.Fatalf("leftover xp = %d, want 50", u.XP)
	}
	if u.TotalXPEarned != 250 {
		t.Fatalf("total xp earned = %d, want 250", u.TotalXPEarned)
	}
}

func TestSettleChargesNewThresholdAfterCascade(t *testing.T) {
	u := &storage.User{Username: "t", Level: 1}
	GrantXP(u, 250)
	Settle(u)
	if u.Level != 3 || u.XP != 50 {
		t.Fatalf("after cascade: level %d xp %d, want 3/50", u.Level, u.XP)
	}

	// Once the cascade is settled, further XP is priced at the new
	// level's threshold (300 at level 3), not the old one.
	GrantXP(u, 100)
	if gained := Settle(u); gained != 0 {
		t.Fatalf("levels gained = %d, want 0", gained)
	}
	if u.Level != 3 || u.XP != 150 {
		t.Fatalf("level %d xp %d, want 3/150", u.Level, u.XP)
	}

	GrantXP(u, 150)
	if gained := Settle(u); gained != 1 {
		t.Fatalf("levels gained = %d, want 1", gained)
	}
	if u.Level != 4 || u.XP != 0 {
		t.Fatalf("level %d xp %d, want 4/0", u.Level, u.XP)
	}
}

func TestSettleBelowThresholdNoLevel(t *testing.T) {
	u := &storage.User{Username: "t", Level: 1, XP: 99}
	if gained := Settle(u); gained != 0 {
		t.Fatalf("levels gained = %d, want 0", gained)
	}
	if u.Level != 1 || u.XP != 99 {
		t.Fatalf("user changed: level %d xp %d", u.Level, u.XP)
	}
}

func TestSettleLevelUpStatBonus(t *testing.T) {
	u := &storage.User{Username: "t", Level: 1, XP: 100}
	Settle(u)
	for _, stat := range AllStats() {
		if got := StatValue(u, stat); got != 2 {
			t.Fatalf("%s = %d after level up, want 2", stat, got)
		}
	}

	warrior := "warrior"
	u2 := &storage.User{Username: "t", Level: 1, XP: 100, SelectedClass: &warrior}
	Settle(u2)
	if u2.StatStrength != 3 { // floor(2 * 1.5)
		t.Fatalf("warrior strength bonus = %d, want 3", u2.StatStrength)
	}
	if u2.StatDiscipline != 2 {
		t.Fatalf("warrior discipline bonus = %d, want 2", u2.StatDiscipline)
	}
}

func TestLoginBonusXP(t *testing.T) {
	cases := []struct{ streak, want int }{
		{1, 10},
		{2, 11},
		{5, 14},
		{11, 20},
		{50, 20}, // capped
	}
	for _, c := range cases {
		if got := LoginBonusXP(c.streak); got != c.want {
			t.Fatalf("LoginBonusXP(%d) = %d, want %d", c.streak, got, c.want)
		}
	}
}
