package root

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
)

// questFlags holds the shared flag set for add and edit.
type questFlags struct {
	icon      string
	category  string
	xp        int
	target    int
	essential bool
	freq      string
	days      []int
	stats     []string
}

func (f *questFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.icon, "icon", "🗡️", "Quest icon")
	cmd.Flags().StringVar(&f.category, "category", "custom", "Category (health|study|mindset|custom)")
	cmd.Flags().IntVar(&f.xp, "xp", 10, "Base XP reward")
	cmd.Flags().IntVar(&f.target, "target", 0, "Target count (informational)")
	cmd.Flags().BoolVar(&f.essential, "essential", false, "Count toward the perfect-day bonus")
	cmd.Flags().StringVarP(&f.freq, "freq", "f", "daily", "Frequency (daily|weekly|biweekly|monthly|custom)")
	cmd.Flags().IntSliceVar(&f.days, "days", nil, "Weekdays for custom frequency (0=Sun ... 6=Sat)")
	cmd.Flags().StringArrayVarP(&f.stats, "stat", "s", nil, "Stat reward, e.g. --stat wisdom=2 (repeatable)")
}

func (f *questFlags) toInput(name string) (engine.QuestInput, error) {
	freq, err := engine.ParseFrequency(f.freq)
	if err != nil {
		return engine.QuestInput{}, err
	}
	rewards, err := parseStatRewards(f.stats)
	if err != nil {
		return engine.QuestInput{}, err
	}
	return engine.QuestInput{
		Name:        name,
		Icon:        f.icon,
		Category:    f.category,
		XPBase:      f.xp,
		Target:      f.target,
		Essential:   f.essential,
		Frequency:   freq,
		CustomDays:  f.days,
		StatRewards: rewards,
	}, nil
}

func parseStatRewards(pairs []string) (map[string]int, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	rewards := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid stat reward %q, expected name=amount", pair)
		}
		stat, err := engine.ParseStat(name)
		if err != nil {
			return nil, err
		}
		amount, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid stat amount in %q", pair)
		}
		rewards[string(stat)] = amount
	}
	return rewards, nil
}
