package domain

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// rebuildBatchSize bounds how many documents are processed between
// cancellation checks during a full rebuild.
const rebuildBatchSize = 50

// noteExtension is the only extension that qualifies for indexing.
const noteExtension = "md"

// TitleIndex maps note paths to their titles. It is maintained
// incrementally through add/remove events and marked stale until the next
// full rebuild or cache adoption. At most one entry exists per path;
// duplicate titles across paths are allowed.
type TitleIndex struct {
	mu         sync.Mutex
	entries    []TitleEntry
	fresh      bool
	rebuilding bool
	pending    []pendingEvent
}

type pendingEvent struct {
	event DocumentEvent
	cfg   ScanConfig
}

// NewTitleIndex creates an empty, stale index.
func NewTitleIndex() *TitleIndex {
	return &TitleIndex{}
}

// Rebuild clears the index and repopulates it from the full document
// collection, applying the exclusion rules in cfg. Documents are processed
// in bounded batches with a cancellation check and a progress report
// between batches. A cancelled rebuild leaves the index stale and
// unchanged. Events that arrive through OnDocumentAdded/OnDocumentRemoved
// while a rebuild is in flight are queued and replayed once it completes.
func (ix *TitleIndex) Rebuild(ctx context.Context, docs []Document, cfg ScanConfig, progress ProgressSink) error {
	ix.mu.Lock()
	ix.rebuilding = true
	ix.fresh = false
	ix.pending = nil
	ix.mu.Unlock()

	total := len(docs)
	entries := make([]TitleEntry, 0, total)

	for start := 0; start < total; start += rebuildBatchSize {
		if err := ctx.Err(); err != nil {
			ix.mu.Lock()
			ix.rebuilding = false
			ix.pending = nil
			ix.mu.Unlock()
			return err
		}

		end := min(start+rebuildBatchSize, total)
		for _, doc := range docs[start:end] {
			if entry, ok := entryFor(doc, cfg); ok {
				entries = append(entries, entry)
			}
		}

		if progress != nil {
			progress.Report(end*100/total, fmt.Sprintf("Indexed %d of %d notes", end, total))
		}
	}

	if total == 0 && progress != nil {
		progress.Report(100, "Indexed 0 notes")
	}

	ix.mu.Lock()
	ix.entries = dedupeByPath(entries)
	ix.fresh = true
	ix.rebuilding = false
	queued := ix.pending
	ix.pending = nil
	ix.mu.Unlock()

	for _, p := range queued {
		ix.apply(p.event, p.cfg)
	}

	return nil
}

// OnDocumentAdded appends an entry for a qualifying document and marks the
// index stale. Staleness is advisory; no rebuild is triggered here.
func (ix *TitleIndex) OnDocumentAdded(doc Document, cfg ScanConfig) {
	ev := DocumentEvent{Kind: EventAdded, Doc: doc, Path: doc.Path}
	if ix.queueIfRebuilding(ev, cfg) {
		return
	}
	ix.apply(ev, cfg)
}

// OnDocumentRemoved drops all entries for the given path and marks the
// index stale.
func (ix *TitleIndex) OnDocumentRemoved(path string) {
	ev := DocumentEvent{Kind: EventRemoved, Path: path}
	if ix.queueIfRebuilding(ev, ScanConfig{}) {
		return
	}
	ix.apply(ev, ScanConfig{})
}

// queueIfRebuilding queues the event when a rebuild is in flight.
func (ix *TitleIndex) queueIfRebuilding(ev DocumentEvent, cfg ScanConfig) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.rebuilding {
		ix.pending = append(ix.pending, pendingEvent{event: ev, cfg: cfg})
		return true
	}
	return false
}

func (ix *TitleIndex) apply(ev DocumentEvent, cfg ScanConfig) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	switch ev.Kind {
	case EventAdded:
		entry, ok := entryFor(ev.Doc, cfg)
		if !ok {
			return
		}
		replaced := false
		for i := range ix.entries {
			if ix.entries[i].Path == entry.Path {
				ix.entries[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			ix.entries = append(ix.entries, entry)
		}
		ix.fresh = false

	case EventRemoved:
		kept := ix.entries[:0]
		for _, e := range ix.entries {
			if e.Path != ev.Path {
				kept = append(kept, e)
			}
		}
		ix.entries = kept
		ix.fresh = false
	}
}

// IsFresh reports whether the index reflects the collection as of the last
// rebuild or snapshot adoption.
func (ix *TitleIndex) IsFresh() bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.fresh
}

// Entries returns a copy of the current entries in collection order.
func (ix *TitleIndex) Entries() []TitleEntry {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	out := make([]TitleEntry, len(ix.entries))
	copy(out, ix.entries)
	return out
}

// Len returns the number of indexed entries.
func (ix *TitleIndex) Len() int {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return len(ix.entries)
}

// Snapshot captures the index state for persistence.
func (ix *TitleIndex) Snapshot() IndexSnapshot {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	entries := make([]TitleEntry, len(ix.entries))
	copy(entries, ix.entries)
	return IndexSnapshot{Entries: entries, Fresh: ix.fresh}
}

// Adopt replaces the index state with a persisted snapshot.
func (ix *TitleIndex) Adopt(snap IndexSnapshot) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.entries = make([]TitleEntry, len(snap.Entries))
	copy(ix.entries, snap.Entries)
	ix.fresh = snap.Fresh
}

// entryFor derives a title entry from a document, applying the exclusion
// rules. Malformed documents are skipped rather than rejected.
func entryFor(doc Document, cfg ScanConfig) (TitleEntry, bool) {
	if doc.Path == "" || doc.Basename == "" {
		return TitleEntry{}, false
	}
	if !strings.EqualFold(doc.Extension, noteExtension) {
		return TitleEntry{}, false
	}
	for _, prefix := range cfg.ExcludedPathPrefixes {
		if prefix != "" && strings.HasPrefix(doc.Path, prefix) {
			return TitleEntry{}, false
		}
	}
	return TitleEntry{Title: doc.Basename, Path: doc.Path}, true
}

// dedupeByPath keeps the first entry for each path, preserving order.
func dedupeByPath(entries []TitleEntry) []TitleEntry {
	seen := make(map[string]bool, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if seen[e.Path] {
			continue
		}
		seen[e.Path] = true
		out = append(out, e)
	}
	return out
}
