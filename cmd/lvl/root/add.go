package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newAddCmd() *cobra.Command {
	var flags questFlags

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			in, err := flags.toInput(args[0])
			if err != nil {
				return err
			}
			q, unlocked, err := svc.CreateQuest(ctx, in)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Quest added"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", q.ID))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Name", fmt.Sprintf("%s %s", q.Icon, q.Name)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", q.XPBase))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Frequency", q.Frequency))
			printUnlocks(cmd, unlocked)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
