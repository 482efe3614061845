package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
	"github.com/itskrishnabajaj/LevelUp/internal/mirror"
	"github.com/itskrishnabajaj/LevelUp/internal/snapshot"
	"github.com/itskrishnabajaj/LevelUp/internal/ui"
	"github.com/itskrishnabajaj/LevelUp/pkg/logger"
)

func newSyncCmd() *cobra.Command {
	var pull bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Push (or pull) a best-effort snapshot to the configured mirror",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.MirrorURL == "" {
				return errors.New("no mirror configured; set mirror_url in the config file or LEVELUP_MIRROR_URL")
			}
			ctx := context.Background()
			db, cleanup, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			client, err := mirror.New(cfg.MirrorURL, logger.Logger())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if pull {
				if !yes {
					return errors.New("pulling replaces all current progress; re-run with --yes to confirm")
				}
				snap, err := client.Pull(ctx, cfg.Username)
				if err != nil {
					return err
				}
				if snap == nil {
					fmt.Fprintln(out, ui.Muted.Render("Nothing mirrored yet for this player."))
					return nil
				}
				if err := snapshot.Restore(ctx, db, cfg.Username, snap); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Pulled and restored mirrored state."))
				return nil
			}

			svc := engine.NewService(db, cfg.Username, logger.Logger())
			if _, err := svc.GetStatus(ctx); err != nil {
				return err
			}

			snap, err := snapshot.Build(ctx, snapshot.NewRepos(db), cfg.Username, time.Now())
			if err != nil {
				return err
			}
			if err := client.Push(ctx, snap); err != nil {
				// Mirror failures are warnings: local state is the
				// source of truth.
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Mirror unreachable; local data is safe. ("+err.Error()+")"))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Snapshot pushed to mirror."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pull, "pull", false, "Pull the mirrored snapshot instead of pushing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm a destructive pull")
	return cmd
}
