package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive quest board for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			return tui.RunBoard(ctx, svc, cmd.OutOrStdout())
		},
	}
}
