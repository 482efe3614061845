package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe progression and start over (journal and vision survive)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this erases level, XP, stats, streaks, quests and achievements; re-run with --yes to confirm")
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ResetProgress(ctx); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Good.Render(ui.IconSparkle+" A fresh start. Level 1, starter quests restored."))
			fmt.Fprintln(out, ui.Muted.Render("Journal entries, vision and login history were kept."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return cmd
}
