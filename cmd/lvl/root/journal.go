package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Daily reflections",
	}
	cmd.AddCommand(newJournalAddCmd(), newJournalListCmd())
	return cmd
}

func newJournalAddCmd() *cobra.Command {
	var mood, wins, challenges, tomorrow string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Write today's journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			m, err := engine.ParseMood(mood)
			if err != nil {
				return err
			}
			res, err := svc.AddJournalEntry(ctx, engine.JournalInput{
				Mood:       m,
				Wins:       wins,
				Challenges: challenges,
				Tomorrow:   tomorrow,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Entry saved. +%d XP for self-awareness.\n", ui.Good.Render(ui.IconJournal), res.XP)
			printUnlocks(cmd, res.Unlocked)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", "okay", "Mood (great|good|okay|low|struggling)")
	cmd.Flags().StringVar(&wins, "wins", "", "What went well")
	cmd.Flags().StringVar(&challenges, "challenges", "", "What was hard")
	cmd.Flags().StringVar(&tomorrow, "tomorrow", "", "Focus for tomorrow")
	return cmd
}

func newJournalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.ListJournal(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconJournal, "Journal"))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No entries yet. Write one with `lvl journal add`."))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s %s (%s)\n", ui.IconCalendar, e.Date.Format("Mon, 02 Jan 2006"), e.Mood)
				if e.Wins != "" {
					fmt.Fprintln(out, "  "+ui.LabelValue("Wins", e.Wins))
				}
				if e.Challenges != "" {
					fmt.Fprintln(out, "  "+ui.LabelValue("Challenges", e.Challenges))
				}
				if e.Tomorrow != "" {
					fmt.Fprintln(out, "  "+ui.LabelValue("Tomorrow", e.Tomorrow))
				}
			}
			return nil
		},
	}
	return cmd
}
