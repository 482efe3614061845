package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var showLocked bool

	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show unlocked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			views, err := svc.ListAchievements(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			shown := 0
			for _, v := range views {
				if !v.Unlocked && !showLocked {
					continue
				}
				if !v.Unlocked && v.Hidden {
					// Hidden achievements stay a surprise until earned.
					continue
				}
				shown++
				if v.Unlocked {
					when := ""
					if v.UnlockedAt != nil {
						when = "  " + ui.Muted.Render(v.UnlockedAt.Format("2006-01-02"))
					}
					fmt.Fprintf(out, "%s %s %s — %s%s\n", ui.Good.Render("✔"), v.Icon, v.Name, v.Desc, when)
				} else {
					fmt.Fprintf(out, "%s %s — %s\n", ui.Muted.Render("🔒"), ui.Muted.Render(v.Name), ui.Muted.Render(v.Desc))
				}
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing unlocked yet. Complete a quest to get started."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showLocked, "all", "a", false, "Include locked achievements")
	return cmd
}
