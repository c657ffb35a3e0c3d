package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"notelink/internal/application/commands"
	"notelink/internal/domain"
)

var linkTitles []string

var linkCmd = &cobra.Command{
	Use:   "link <note-path>",
	Short: "Convert title occurrences in a note to wiki links",
	Long: `Convert detected title occurrences in a note to [[wiki links]] and
write the note back.

Without --title every detected occurrence is converted. Pass --title
one or more times to convert only those titles.

Examples:
  notelink-cli link projects/roadmap.md
  notelink-cli link projects/roadmap.md --title "Quarterly Review"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := ensureIndex(ctx); err != nil {
			return err
		}

		cfg := settings.ScanConfig()
		scanCmd := commands.NewScanCommand(index, repo, args[0], cfg)
		occurrences, err := scanCmd.Execute(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyResult) {
				fmt.Println("No occurrences found.")
				return nil
			}
			return err
		}

		selected := occurrences
		if len(linkTitles) > 0 {
			selected = selected[:0:0]
			wanted := make(map[string]bool, len(linkTitles))
			for _, t := range linkTitles {
				wanted[strings.ToLower(t)] = true
			}
			for _, occ := range occurrences {
				if wanted[strings.ToLower(occ.Title)] {
					selected = append(selected, occ)
				}
			}
		}
		if len(selected) == 0 {
			fmt.Println("No occurrences matched the requested titles.")
			return nil
		}

		linkCmd := commands.NewLinkCommand(repo, args[0], selected, cfg)
		if _, err := linkCmd.Execute(ctx); err != nil {
			return err
		}

		fmt.Printf("Linked %d occurrence(s) in %s\n", len(selected), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
	linkCmd.Flags().StringArrayVar(&linkTitles, "title", nil, "only convert occurrences of this title (repeatable)")
}
