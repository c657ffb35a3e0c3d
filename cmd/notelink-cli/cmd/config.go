package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"notelink/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change vault settings",
	Long: `Show or change the settings stored in ` + config.SettingsFile + ` at the
vault root.

Examples:
  notelink-cli config
  notelink-cli config set pageSize 25
  notelink-cli config set excludedFolders templates/,archive/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("excludedFolders:    %s\n", strings.Join(settings.ExcludedFolders, ","))
		fmt.Printf("pageSize:           %d\n", settings.PageSize)
		fmt.Printf("enableWikiLinks:    %t\n", settings.EnableWikiLinks)
		fmt.Printf("respectCase:        %t\n", settings.RespectCase)
		fmt.Printf("excludeFrontmatter: %t\n", settings.ExcludeFrontmatter)
		fmt.Printf("caseSensitive:      %t\n", settings.CaseSensitive)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting and write it back",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "excludedFolders":
			settings.ExcludedFolders = nil
			for _, f := range strings.Split(value, ",") {
				if f = strings.TrimSpace(f); f != "" {
					settings.ExcludedFolders = append(settings.ExcludedFolders, f)
				}
			}
		case "pageSize":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("pageSize must be a positive integer, got %q", value)
			}
			settings.PageSize = n
		case "enableWikiLinks", "respectCase", "excludeFrontmatter", "caseSensitive":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s must be true or false, got %q", key, value)
			}
			switch key {
			case "enableWikiLinks":
				settings.EnableWikiLinks = b
			case "respectCase":
				settings.RespectCase = b
			case "excludeFrontmatter":
				settings.ExcludeFrontmatter = b
			case "caseSensitive":
				settings.CaseSensitive = b
			}
		default:
			return fmt.Errorf("unknown setting: %s", key)
		}

		if err := settings.Save(vaultPath); err != nil {
			return err
		}
		fmt.Printf("%s updated\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
}
