package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"notelink/internal/application/commands"
	"notelink/internal/domain"
)

var scanCmd = &cobra.Command{
	Use:   "scan <note-path>",
	Short: "Scan a note for linkable title occurrences",
	Long: `Scan a note for occurrences of other notes' titles that are not yet
wiki links.

Each occurrence is printed with its rune span, the matched text, the
note it resolves to, and the surrounding context.

Examples:
  notelink-cli scan projects/roadmap.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := ensureIndex(ctx); err != nil {
			return err
		}

		scanCmd := commands.NewScanCommand(index, repo, args[0], settings.ScanConfig())
		occurrences, err := scanCmd.Execute(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyResult) {
				fmt.Println("No occurrences found.")
				return nil
			}
			return err
		}

		for _, occ := range occurrences {
			fmt.Printf("[%d:%d] %q → %s  …%s…\n", occ.Start, occ.End, occ.MatchedText, occ.Path, occ.Context)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
