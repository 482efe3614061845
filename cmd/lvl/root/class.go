package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func newClassCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class [id]",
		Short: "Show classes, or choose one once all stats hit 100",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				st, err := svc.GetStatus(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Heading("⚔️", "Classes"))
				if st.Class != nil {
					fmt.Fprintln(out, ui.LabelValue("Current", fmt.Sprintf("%s %s", st.Class.Icon, st.Class.Name)))
					fmt.Fprintln(out, "")
				}
				for _, c := range engine.Classes() {
					fmt.Fprintf(out, "%s %s (%s)\n", c.Icon, ui.H2.Render(c.Name), c.ID)
					fmt.Fprintln(out, "  "+ui.Muted.Render(c.Desc))
				}
				if st.Class == nil {
					fmt.Fprintln(out, "")
					fmt.Fprintln(out, ui.Muted.Render("Reach 100 in every stat, then run `lvl class <id>` to ascend."))
				}
				return nil
			}

			c, unlocked, err := svc.SelectClass(ctx, args[0])
			if errors.Is(err, engine.ErrClassLocked) {
				return fmt.Errorf("class change locked: every stat must reach %d first", engine.BaseStatCap)
			}
			if errors.Is(err, engine.ErrClassAlreadySet) {
				return errors.New("class already chosen; the choice is permanent")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s You are now a %s %s. Stat cap raised to %d.\n",
				ui.Gold.Render("⚔️ Class changed!"), c.Icon, c.Name, engine.ClassStatCap)
			printUnlocks(cmd, unlocked)
			return nil
		},
	}
	return cmd
}
