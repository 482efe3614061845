package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/quote"
	"github.com/itskrishnabajaj/LevelUp/internal/ui"
	"github.com/itskrishnabajaj/LevelUp/pkg/logger"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print today's quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.GetStatus(ctx)
			if err != nil {
				return err
			}
			q := quote.NewFetcher(cfg.QuoteURL, logger.Logger()).Fetch(ctx, st.User.Vision)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", ui.Title.Render("“"+q.Text+"”"), ui.Muted.Render("— "+q.Author))
			return nil
		},
	}
	return cmd
}
