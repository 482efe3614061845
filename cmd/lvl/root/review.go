package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newReviewCmd() *cobra.Command {
	var win, focus string
	var list bool

	cmd := &cobra.Command{
		Use:   "review",
		Short: "File a weekly review",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if list {
				revs, err := svc.ListWeeklyReviews(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Heading(ui.IconCalendar, "Weekly Reviews"))
				if len(revs) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("No reviews yet."))
					return nil
				}
				for _, r := range revs {
					fmt.Fprintln(out, ui.H2.Render(r.Day))
					if r.Win != "" {
						fmt.Fprintln(out, "  "+ui.LabelValue("Win", r.Win))
					}
					if r.Focus != "" {
						fmt.Fprintln(out, "  "+ui.LabelValue("Next focus", r.Focus))
					}
				}
				return nil
			}

			res, err := svc.SaveWeeklyReview(ctx, win, focus)
			if errors.Is(err, engine.ErrAlreadyReviewed) {
				fmt.Fprintln(out, ui.Muted.Render("Already reviewed today."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s +%d XP\n", ui.Good.Render("🎉 Weekly review saved!"), res.XP)
			return nil
		},
	}

	cmd.Flags().StringVar(&win, "win", "", "Biggest win this week")
	cmd.Flags().StringVar(&focus, "focus", "", "Focus for next week")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Show past reviews")
	return cmd
}
