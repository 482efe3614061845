package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newCheckinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Claim the daily check-in bonus",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.RecordLogin(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !res.Awarded {
				fmt.Fprintln(out, ui.Muted.Render("Already checked in today."))
				return nil
			}
			fmt.Fprintf(out, "%s +%d XP (check-in streak %s%d)\n",
				ui.Good.Render(ui.IconSparkle+" Daily check-in!"), res.XP, ui.IconStreak, res.LoginStreak)
			printUnlocks(cmd, res.Unlocked)
			return nil
		},
	}
	return cmd
}
