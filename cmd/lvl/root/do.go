package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest for the current period",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteQuest(ctx, args[0])
			if errors.Is(err, engine.ErrAlreadySatisfied) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already done for this period."))
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDone, fmt.Sprintf("%s %s", res.Quest.Icon, res.Quest.Name)))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("+%d (%d base, %d first-of-day, %d streak, %d comeback)",
				res.XP.Total, res.XP.Base, res.XP.FirstOfDay, res.XP.StreakBonus, res.XP.ComebackBonus)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconStreak, res.Streak)))
			for stat, gain := range res.StatGains {
				fmt.Fprintf(out, "%s +%d %s\n", ui.Good.Render("▲"), gain, stat)
			}
			if res.LevelsGained > 0 {
				fmt.Fprintf(out, "%s %s now level %d\n", ui.BadgeLevelUp, ui.IconLevel, res.Level)
			}
			if res.PerfectDay {
				fmt.Fprintf(out, "%s +%d XP — every essential quest done today\n", ui.BadgePerfectDay, engine.PerfectDayBonusXP)
			}
			printUnlocks(cmd, res.Unlocked)
			return nil
		},
	}
	return cmd
}
