package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"notelink/internal/adapters/watcher"
	"notelink/internal/application/commands"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault and keep the title index current",
	Long: `Watch the vault for created, removed, and renamed notes and apply
each change to the title index incrementally.

Runs until interrupted with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := ensureIndex(ctx); err != nil {
			return err
		}

		w := watcher.New(repo.VaultPath())
		watch := commands.NewWatchCommand(w, index, cache, settings.ScanConfig())

		fmt.Printf("Watching %s (%d titles indexed)\n", repo.VaultPath(), index.Len())
		if err := watch.Execute(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
