package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener implements ports.NoteOpener using the obsidian:// URI scheme.
type Opener struct {
	vaultName string
}

// NewOpener creates an Obsidian opener for the given vault path. Obsidian
// addresses vaults by their directory name.
func NewOpener(vaultPath string) *Opener {
	return &Opener{vaultName: filepath.Base(vaultPath)}
}

// OpenNote opens the note at the given vault-relative path in Obsidian.
func (o *Opener) OpenNote(relPath string) error {
	if strings.HasPrefix(relPath, "..") || filepath.IsAbs(relPath) {
		return fmt.Errorf("note is outside the vault: %s", relPath)
	}
	return o.openURI(o.BuildURI(relPath))
}

// BuildURI constructs the obsidian:// URI for a vault-relative note path.
func (o *Opener) BuildURI(relPath string) string {
	// Obsidian expects forward slashes in paths
	relPath = filepath.ToSlash(relPath)

	return fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		url.QueryEscape(o.vaultName),
		url.QueryEscape(relPath),
	)
}

func (o *Opener) openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
