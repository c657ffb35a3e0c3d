package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statusTitles bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the cached index and active settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := cache.Load()
		if err != nil {
			return err
		}

		fmt.Printf("Vault:     %s\n", repo.VaultPath())
		if snap == nil {
			fmt.Println("Index:     not built")
		} else {
			state := "fresh"
			if !snap.Fresh {
				state = "stale"
			}
			fmt.Printf("Index:     %d titles (%s)\n", len(snap.Entries), state)
		}

		fmt.Printf("Settings:  pageSize=%d wikiLinks=%t respectCase=%t excludeFrontmatter=%t caseSensitive=%t\n",
			settings.PageSize, settings.EnableWikiLinks, settings.RespectCase,
			settings.ExcludeFrontmatter, settings.CaseSensitive)
		if len(settings.ExcludedFolders) > 0 {
			fmt.Printf("Excluded:  %s\n", strings.Join(settings.ExcludedFolders, ", "))
		}

		if statusTitles && snap != nil {
			for _, e := range snap.Entries {
				fmt.Printf("  %s → %s\n", e.Title, e.Path)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusTitles, "titles", false, "also list every indexed title")
}
