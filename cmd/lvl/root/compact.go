package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newCompactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compact",
		Short: "Prune old completion history and trim the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Compact(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Compacted"))
			fmt.Fprintln(out, ui.LabelValue("Completions pruned", res.CompletionsPruned))
			fmt.Fprintln(out, ui.LabelValue("Kept from", res.CutoffDay))
			return nil
		},
	}
}
