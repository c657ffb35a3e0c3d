package ports

// NoteOpener opens a note in the host note-taking application.
type NoteOpener interface {
	// OpenNote opens the note at the given vault-relative path.
	OpenNote(relPath string) error
}
