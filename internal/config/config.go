package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"notelink/internal/domain"
)

const DefaultVaultPath = "~/Documents/notes"

// SettingsFile is the per-vault settings file name.
const SettingsFile = ".notelink.yaml"

// VaultPath returns the vault path from the NOTELINK_VAULT env var,
// falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("NOTELINK_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}

// Settings holds the persisted user configuration.
type Settings struct {
	ExcludedFolders    []string `yaml:"excludedFolders"`
	PageSize           int      `yaml:"pageSize"`
	EnableWikiLinks    bool     `yaml:"enableWikiLinks"`
	RespectCase        bool     `yaml:"respectCase"`
	ExcludeFrontmatter bool     `yaml:"excludeFrontmatter"`
	CaseSensitive      bool     `yaml:"caseSensitive"`
}

// Defaults returns the out-of-the-box settings.
func Defaults() Settings {
	return Settings{
		ExcludedFolders:    []string{},
		PageSize:           10,
		EnableWikiLinks:    false,
		RespectCase:        false,
		ExcludeFrontmatter: true,
		CaseSensitive:      false,
	}
}

// Load reads the settings file from the vault root. A missing file yields
// the defaults; a malformed file is an error.
func Load(vaultPath string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(settingsPath(vaultPath))
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Defaults(), fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.PageSize <= 0 {
		s.PageSize = Defaults().PageSize
	}
	return s, nil
}

// Save writes the settings file to the vault root.
func (s Settings) Save(vaultPath string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(settingsPath(vaultPath), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func settingsPath(vaultPath string) string {
	if len(vaultPath) > 0 && vaultPath[0] == '~' {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	return filepath.Join(vaultPath, SettingsFile)
}

// ScanConfig maps the persisted settings onto a scan configuration.
func (s Settings) ScanConfig() domain.ScanConfig {
	return domain.ScanConfig{
		ExcludedPathPrefixes: s.ExcludedFolders,
		ExcludeFrontmatter:   s.ExcludeFrontmatter,
		CaseSensitive:        s.CaseSensitive,
		RespectCaseOnReplace: s.RespectCase,
		UseWikiLinkAliases:   s.EnableWikiLinks,
	}
}
