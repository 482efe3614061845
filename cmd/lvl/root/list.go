package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests with today's state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			views, err := svc.ListQuests(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "Quests"))
			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No quests yet. Add one with `lvl add`."))
				return nil
			}
			for _, v := range views {
				line := fmt.Sprintf("- [%s] %s %s  %s  +%d XP",
					ui.QuestState(v.Satisfied, v.Scheduled), v.Icon, v.Name,
					ui.Muted.Render(v.Frequency), v.ProjectedXP)
				if v.Streak > 1 {
					line += fmt.Sprintf("  %s%d", ui.IconStreak, v.Streak)
				}
				if engine.Frequency(v.Frequency) == engine.FrequencyMonthly && v.Target > 0 {
					line += "  " + ui.Muted.Render(fmt.Sprintf("%d/%d this month", v.MonthlyCount, v.Target))
				}
				if v.Essential {
					line += "  " + ui.Warn.Render("essential")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				fmt.Fprintln(cmd.OutOrStdout(), "  "+ui.Muted.Render("id: "+v.ID))
			}
			return nil
		},
	}
	return cmd
}
