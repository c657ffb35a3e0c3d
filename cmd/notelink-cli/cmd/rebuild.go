package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notelink/internal/application/commands"
	"notelink/internal/domain"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the title index from scratch",
	Long: `Rebuild the title index from every note in the vault, ignoring any
cached snapshot, and persist the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		rebuild := commands.NewRebuildCommand(repo, index, cache, settings.ScanConfig())
		rebuild.Progress = domain.ProgressFunc(func(percent int, message string) {
			fmt.Printf("\r%3d%%  %s", percent, message)
		})
		if err := rebuild.Execute(ctx); err != nil {
			fmt.Println()
			return err
		}

		fmt.Printf("\nIndex rebuilt: %d titles\n", index.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}
