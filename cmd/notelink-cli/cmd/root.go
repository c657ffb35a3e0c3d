package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notelink/internal/adapters/filesystem"
	"notelink/internal/adapters/sqlite"
	"notelink/internal/application/commands"
	"notelink/internal/config"
	"notelink/internal/domain"
)

var (
	vaultPath string
	repo      *filesystem.Repository
	index     *domain.TitleIndex
	cache     *sqlite.Cache
	settings  config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "notelink-cli",
	Short: "CLI for linking note titles across an Obsidian vault",
	Long: `notelink-cli detects occurrences of known note titles inside your
notes and converts them to [[wiki links]].

It maintains a persistent title index for the vault and provides
commands to scan notes, apply links, rebuild the index, and watch
the vault for changes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		settings, err = config.Load(vaultPath)
		if err != nil {
			return err
		}

		repo = filesystem.NewRepository(vaultPath)
		index = domain.NewTitleIndex()

		cache = sqlite.NewCache()
		if err := cache.Open(vaultPath); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cache != nil {
			cache.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
}

// ensureIndex loads the cached snapshot or rebuilds the index so that
// subcommands always run against fresh titles.
func ensureIndex(ctx context.Context) error {
	refresh := commands.NewRefreshCommand(repo, index, cache, settings.ScanConfig())
	return refresh.Execute(ctx)
}
