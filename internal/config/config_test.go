package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(s, Defaults()) {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestLoad_ReadsSettings(t *testing.T) {
	vault := t.TempDir()
	raw := "excludedFolders:\n  - templates/\npageSize: 25\nenableWikiLinks: true\nrespectCase: true\n"
	if err := os.WriteFile(filepath.Join(vault, SettingsFile), []byte(raw), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	s, err := Load(vault)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(s.ExcludedFolders) != 1 || s.ExcludedFolders[0] != "templates/" {
		t.Errorf("excludedFolders: got %v", s.ExcludedFolders)
	}
	if s.PageSize != 25 {
		t.Errorf("pageSize: expected 25, got %d", s.PageSize)
	}
	if !s.EnableWikiLinks || !s.RespectCase {
		t.Errorf("booleans not loaded: %+v", s)
	}
	// Untouched keys keep their defaults.
	if !s.ExcludeFrontmatter {
		t.Error("excludeFrontmatter should default to true")
	}
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	vault := t.TempDir()
	if err := os.WriteFile(filepath.Join(vault, SettingsFile), []byte("pageSize: [not a number"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := Load(vault); err == nil {
		t.Error("expected an error for malformed settings")
	}
}

func TestLoad_InvalidPageSizeFallsBack(t *testing.T) {
	vault := t.TempDir()
	if err := os.WriteFile(filepath.Join(vault, SettingsFile), []byte("pageSize: -3\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	s, err := Load(vault)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.PageSize != Defaults().PageSize {
		t.Errorf("expected default page size, got %d", s.PageSize)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	vault := t.TempDir()

	s := Defaults()
	s.PageSize = 15
	s.ExcludedFolders = []string{"archive/"}
	s.CaseSensitive = true
	if err := s.Save(vault); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(vault)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, s) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", s, loaded)
	}
}

func TestScanConfigMapping(t *testing.T) {
	s := Settings{
		ExcludedFolders:    []string{"templates/"},
		ExcludeFrontmatter: true,
		CaseSensitive:      true,
		RespectCase:        true,
		EnableWikiLinks:    true,
	}

	cfg := s.ScanConfig()
	if len(cfg.ExcludedPathPrefixes) != 1 || cfg.ExcludedPathPrefixes[0] != "templates/" {
		t.Errorf("prefixes: got %v", cfg.ExcludedPathPrefixes)
	}
	if !cfg.ExcludeFrontmatter || !cfg.CaseSensitive || !cfg.RespectCaseOnReplace || !cfg.UseWikiLinkAliases {
		t.Errorf("flags not mapped: %+v", cfg)
	}
}

func TestVaultPathEnvOverride(t *testing.T) {
	t.Setenv("NOTELINK_VAULT", "/tmp/custom-vault")
	if got := VaultPath(); got != "/tmp/custom-vault" {
		t.Errorf("expected env override, got %q", got)
	}

	t.Setenv("NOTELINK_VAULT", "")
	if got := VaultPath(); got != DefaultVaultPath {
		t.Errorf("expected default, got %q", got)
	}
}
