package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newEditCmd() *cobra.Command {
	var flags questFlags
	var name string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a quest in place",
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

			current, err := svc.GetQuest(ctx, args[0])
			if err != nil {
				return err
			}

			// Flags not given keep their current values.
			if name == "" {
				name = current.Name
			}
			if !cmd.Flags().Changed("icon") {
				flags.icon = current.Icon
			}
			if !cmd.Flags().Changed("category") {
				flags.category = current.Category
			}
			if !cmd.Flags().Changed("xp") {
				flags.xp = current.XPBase
			}
			if !cmd.Flags().Changed("target") {
				flags.target = current.Target
			}
			if !cmd.Flags().Changed("essential") {
				flags.essential = current.Essential
			}
			if !cmd.Flags().Changed("freq") {
				flags.freq = current.Frequency
			}
			if !cmd.Flags().Changed("days") {
				flags.days = current.CustomDays
			}

			in, err := flags.toInput(name)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("stat") {
				in.StatRewards = current.StatRewards
			}

			q, err := svc.UpdateQuest(ctx, args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Quest updated"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Name", fmt.Sprintf("%s %s", q.Icon, q.Name)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", q.XPBase))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Frequency", q.Frequency))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New quest name")
	flags.register(cmd)
	return cmd
}
