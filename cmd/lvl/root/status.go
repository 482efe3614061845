package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player level, stats, and streaks",
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
			u := st.User
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Player Status"))
			fmt.Fprintln(out, ui.LabelValue("Player", u.Username))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d  %s %d/%d XP", u.Level, ui.ProgressBar(u.XP, st.XPThreshold, 24), u.XP, st.XPThreshold)))
			fmt.Fprintln(out, ui.LabelValue("Lifetime XP", u.TotalXPEarned))
			if st.Class != nil {
				fmt.Fprintln(out, ui.LabelValue("Class", fmt.Sprintf("%s %s", st.Class.Icon, st.Class.Name)))
			}
			if u.LowEnergyMode {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconShield+" Low energy mode active — only essential quests are shown."))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats (cap "+fmt.Sprint(st.StatCap)+")"))
			fmt.Fprintf(out, "- 💪 STR: %d\n", u.StatStrength)
			fmt.Fprintf(out, "- 🎯 DIS: %d\n", u.StatDiscipline)
			fmt.Fprintf(out, "- 🧠 FOC: %d\n", u.StatFocus)
			fmt.Fprintf(out, "- ❤️ VIT: %d\n", u.StatVitality)
			fmt.Fprintf(out, "- 📚 WIS: %d\n", u.StatWisdom)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconStreak+" Streaks"))
			fmt.Fprintln(out, ui.LabelValue("Current", st.CurrentStreak))
			fmt.Fprintln(out, ui.LabelValue("Best", st.LongestStreak))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d quests", st.TodayCount)))
			fmt.Fprintln(out, ui.LabelValue("Total", fmt.Sprintf("%d completions", st.TotalCompletions)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			fmt.Fprintln(out, ui.LabelValue("Unlocked", fmt.Sprintf("%d/%d", st.UnlockedCount, st.AchievementCount)))
			if u.Vision != "" {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.LabelValue(ui.IconVision+" Vision", u.Vision))
			}
			return nil
		},
	}
	return cmd
}
