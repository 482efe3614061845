package engine

import "fmt"

// Class is a specialization a player can pick once all base stats are
// maxed. Each class multiplies growth for its favored stats and raises
// the stat cap.
type Class struct {
	ID      string
	Name    string
	Icon    string
	Desc    string
	Bonuses map[Stat]float64
}

const (
	// BaseStatCap applies before a class is chosen.
	BaseStatCap = 100
	// ClassStatCap applies once a class is chosen.
	ClassStatCap = 1000
)

// Classes returns the selectable class catalog.
func Classes() []Class {
	return []Class{
		{
			ID:   "warrior",
			Name: "Warrior",
			Icon: "⚔️",
			Desc: "Masters of physical discipline. Strength and vitality grow faster.",
			Bonuses: map[Stat]float64{
				StatStrength: 1.5,
				StatVitality: 1.5,
			},
		},
		{
			ID:   "scholar",
			Name: "Scholar",
			Icon: "📚",
			Desc: "Seekers of knowledge. Wisdom and focus grow faster.",
			Bonuses: map[Stat]float64{
				StatWisdom: 1.5,
				StatFocus:  1.5,
			},
		},
		{
			ID:   "monk",
			Name: "Monk",
			Icon: "🧘",
			Desc: "Balanced in all things. Every stat grows a little faster.",
			Bonuses: map[Stat]float64{
				StatStrength:   1.2,
				StatDiscipline: 1.2,
				StatFocus:      1.2,
				StatVitality:   1.2,
				StatWisdom:     1.2,
			},
		},
		{
			ID:   "leader",
			Name: "Leader",
			Icon: "👑",
			Desc: "Forged by routine. Discipline grows much faster.",
			Bonuses: map[Stat]float64{
				StatDiscipline: 1.75,
			},
		},
	}
}

// ClassByID looks up a class definition. The boolean reports whether
// the id names a known class.
func ClassByID(id string) (Class, bool) {
	for _, c := range Classes() {
		if c.ID == id {
			return c, true
		}
	}
	return Class{}, false
}

// classMultiplier returns the growth multiplier the player's class
// grants for a stat. Without a class, or for unfavored stats, it is 1.
func classMultiplier(selected *string, stat Stat) float64 {
	if selected == nil {
		return 1
	}
	c, ok := ClassByID(*selected)
	if !ok {
		return 1
	}
	if mult, ok := c.Bonuses[stat]; ok {
		return mult
	}
	return 1
}

// statCapFor returns the active cap given the player's class choice.
func statCapFor(selected *string) int {
	if selected != nil {
		if _, ok := ClassByID(*selected); ok {
			return ClassStatCap
		}
	}
	return BaseStatCap
}

func validateClassID(id string) error {
	if _, ok := ClassByID(id); !ok {
		return fmt.Errorf("unknown class: %q", id)
	}
	return nil
}
