package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newTimerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer <activity> <minutes>",
		Short: "Log a timed focus session",
		Long:  "Log a timed session of study, exercise, meditation, or speaking practice. XP and a stat tick accrue per completed interval.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("activity and minutes are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("minutes must be an integer")
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

			minutes, _ := strconv.Atoi(args[1])
			res, err := svc.LogActivity(ctx, args[0], minutes*60)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTimer, fmt.Sprintf("%s %s — %d min", res.Activity.Icon, res.Activity.Name, minutes)))
			if res.Intervals == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Session too short to pay out; time still counts toward achievements."))
				return nil
			}
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("+%d", res.XP)))
			fmt.Fprintln(out, ui.LabelValue("Stat", fmt.Sprintf("+%d %s", res.StatGain, res.Activity.Stat)))
			printUnlocks(cmd, res.Unlocked)
			return nil
		},
	}

	cmd.ValidArgs = []string{"study", "exercise", "meditation", "speaking"}
	return cmd
}
