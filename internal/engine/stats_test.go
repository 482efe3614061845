package engine

import (
	"testing"

	"github.com/itskrishnabajaj/LevelUp/internal/storage"
)

func TestApplyStatRewardsClampsAtBaseCap(t *testing.T) {
	u := &storage.User{Username: "t", Level: 1}
	q := storage.Quest{StatRewards: map[string]int{"strength": 7, "wisdom": 3}}

	for i := 0; i < 40; i++ {
		ApplyStatRewards(u, q)
	}
	if u.StatStrength != BaseStatCap {
		t.Fatalf("strength = %d, want clamped at %d", u.StatStrength, BaseStatCap)
	}
	if u.StatWisdom != BaseStatCap {
		t.Fatalf("wisdom = %d, want clamped at %d", u.StatWisdom, BaseStatCap)
	}
}

func TestApplyStatRewardsClampsAtClassCap(t *testing.T) {
	monk := "monk"
	u := &storage.User{Username: "t", Level: 1, SelectedClass: &monk}
	q := storage.Quest{StatRewards: map[string]int{"focus": 90}}

	// floor(90*1.2) = 108 per completion; a dozen blow well past the
	// raised cap.
	for i := 0; i < 12; i++ {
		ApplyStatRewards(u, q)
	}
	if u.StatFocus != ClassStatCap {
		t.Fatalf("focus = %d, want clamped at %d", u.StatFocus, ClassStatCap)
	}
}

func TestLevelUpStatBonusClampsAtCap(t *testing.T) {
	u := &storage.User{Username: "t", Level: 1, XP: 100}
	for _, stat := range AllStats() {
		setStat(u, stat, BaseStatCap-1)
	}
	Settle(u)
	for _, stat := range AllStats() {
		if got := StatValue(u, stat); got != BaseStatCap {
			t.Fatalf("%s = %d after level up at the cap, want %d", stat, got, BaseStatCap)
		}
	}
}
