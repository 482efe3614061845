package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/config"
	"github.com/itskrishnabajaj/LevelUp/internal/ui"
	"github.com/itskrishnabajaj/LevelUp/pkg/logger"
)

const Version = "0.1.0"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "lvl",
	Short:         "LevelUp — gamified habit tracker",
	Long:          "LevelUp is a local-first CLI/TUI habit tracker: complete recurring quests, earn XP, grow stats, keep streaks, and unlock achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newRmCmd(),
		newListCmd(),
		newDoCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newJournalCmd(),
		newTimerCmd(),
		newCheckinCmd(),
		newReviewCmd(),
		newClassCmd(),
		newVisionCmd(),
		newLowEnergyCmd(),
		newQuoteCmd(),
		newExportCmd(),
		newImportCmd(),
		newSyncCmd(),
		newCompactCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
