package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
	"github.com/itskrishnabajaj/LevelUp/internal/ui"
)

func printUnlocks(cmd *cobra.Command, unlocked []engine.Achievement) {
	for _, a := range unlocked {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s — %s\n",
			ui.Gold.Render(ui.IconTrophy+" Achievement unlocked:"), a.Icon, a.Name, ui.Muted.Render(a.Desc))
	}
}
