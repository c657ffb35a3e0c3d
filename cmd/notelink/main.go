package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"notelink/internal/adapters/filesystem"
	"notelink/internal/adapters/obsidian"
	"notelink/internal/adapters/sqlite"
	"notelink/internal/adapters/tui"
	"notelink/internal/config"
	"notelink/internal/domain"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: notelink [-vault path] <note.md>")
		os.Exit(2)
	}
	notePath := flag.Arg(0)

	settings, err := config.Load(*vaultFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize adapters
	repo := filesystem.NewRepository(*vaultFlag)
	opener := obsidian.NewOpener(*vaultFlag)
	index := domain.NewTitleIndex()

	cache := sqlite.NewCache()
	if err := cache.Open(*vaultFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cache.Close()

	// Create and run TUI app
	app := tui.NewApp(repo, repo, index, cache, opener, settings.ScanConfig(), notePath, settings.PageSize)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
