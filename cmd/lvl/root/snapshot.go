package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
	"github.com/itskrishnabajaj/LevelUp/internal/snapshot"
	"github.com/itskrishnabajaj/LevelUp/internal/ui"
	"github.com/itskrishnabajaj/LevelUp/pkg/logger"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export your full state to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			db, cleanup, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Make sure the account exists before exporting it.
			svc := engine.NewService(db, cfg.Username, logger.Logger())
			if _, err := svc.GetStatus(ctx); err != nil {
				return err
			}

			snap, err := snapshot.Build(ctx, snapshot.NewRepos(db), cfg.Username, time.Now())
			if err != nil {
				return err
			}
			data, err := snapshot.Encode(snap)
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(outPath, data, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported to %s (%d bytes)\n", ui.Good.Render(ui.IconDone), outPath, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	return cmd
}

func newImportCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace your state with a previously exported file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("export file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("importing replaces all current progress; re-run with --yes to confirm")
			}
			ctx := context.Background()
			db, cleanup, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read export: %w", err)
			}
			snap, err := snapshot.Decode(data)
			if err != nil {
				return err
			}
			if err := snapshot.Restore(ctx, db, cfg.Username, snap); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Import complete."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the destructive import")
	return cmd
}
