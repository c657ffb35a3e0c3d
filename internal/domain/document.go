package domain

// Document describes one file in the note collection, as reported by the
// collection provider. Basename carries the filename without its extension.
type Document struct {
	Path      string // Relative path from the vault root (unique identifier)
	Basename  string // Filename without extension, e.g. "Project Alpha"
	Extension string // Lowercase extension without dot, e.g. "md"
}

// EventKind distinguishes collection change events.
type EventKind int

const (
	EventAdded EventKind = iota
	EventRemoved
)

// String returns a human-readable representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// DocumentEvent is a single collection change. Doc is populated for added
// events; Path is always populated.
type DocumentEvent struct {
	Kind EventKind
	Doc  Document
	Path string
}

// TitleEntry maps a note title to the note that owns it. Titles are not
// unique across the vault; paths are.
type TitleEntry struct {
	Title string // Display name, case preserved as authored
	Path  string // Unique note identifier
}

// Occurrence is one detected position where a title appears as plain prose.
// Start and End are rune offsets into the scanned text, [Start, End).
type Occurrence struct {
	Title       string
	Path        string
	MatchedText string // Exact substring as found, original casing
	Context     string // Fixed-radius window around the match, for review
	Start       int
	End         int
}

// ScanConfig controls one scan/rewrite cycle. It is immutable for the
// duration of the cycle.
type ScanConfig struct {
	ExcludedPathPrefixes []string
	ExcludeFrontmatter   bool
	CaseSensitive        bool
	RespectCaseOnReplace bool
	UseWikiLinkAliases   bool
}

// IndexSnapshot is the persistable state of a TitleIndex.
type IndexSnapshot struct {
	Entries []TitleEntry
	Fresh   bool
}

// ProgressSink receives incremental progress during a rebuild.
type ProgressSink interface {
	Report(percent int, message string)
}

// ProgressFunc adapts a plain function to a ProgressSink.
type ProgressFunc func(percent int, message string)

// Report implements ProgressSink.
func (f ProgressFunc) Report(percent int, message string) {
	f(percent, message)
}
