package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newVisionCmd() *cobra.Command {
	var vision, anti string

	cmd := &cobra.Command{
		Use:   "vision",
		Short: "Set who you are becoming — and who you refuse to become",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vision == "" && anti == "" {
				return errors.New("provide --vision and/or --anti")
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			unlocked, err := svc.SetVision(ctx, vision, anti)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconVision+" Vision saved."))
			printUnlocks(cmd, unlocked)
			return nil
		},
	}

	cmd.Flags().StringVar(&vision, "vision", "", "The person you are building toward")
	cmd.Flags().StringVar(&anti, "anti", "", "The person you refuse to become")
	return cmd
}

func newLowEnergyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lowenergy",
		Short: "Toggle low energy mode (essential quests only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			on, unlocked, err := svc.ToggleLowEnergy(ctx)
			if err != nil {
				return err
			}
			if on {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconShield+" Low energy mode activated. Only essential quests count today."))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("🔋 Normal mode restored."))
			}
			printUnlocks(cmd, unlocked)
			return nil
		},
	}
	return cmd
}
