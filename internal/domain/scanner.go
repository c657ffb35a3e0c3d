package domain

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
)

// contextRadius is the number of runes captured on each side of a match
// for the review snippet.
const contextRadius = 20

// Scan finds every occurrence of every title in text, in collection order
// per title and left to right within a title, then merged and stable-sorted
// by ascending start offset. Text already inside a [[bracketed reference]]
// is never matched. The scanner holds no state; identical inputs yield
// identical results.
func Scan(text string, entries []TitleEntry, cfg ScanConfig) []Occurrence {
	body, offset := text, 0
	if cfg.ExcludeFrontmatter {
		body, offset = StripFrontmatter(text)
	}
	if body == "" || len(entries) == 0 {
		return nil
	}

	opts := regexp2.None
	if !cfg.CaseSensitive {
		opts |= regexp2.IgnoreCase
	}

	bodyRunes := []rune(body)
	var found []Occurrence
	for _, entry := range entries {
		if entry.Title == "" {
			continue
		}
		re, err := regexp2.Compile(titlePattern(entry.Title), opts)
		if err != nil {
			continue
		}

		m, err := re.FindStringMatch(body)
		for m != nil && err == nil {
			start, end := m.Index, m.Index+m.Length
			found = append(found, Occurrence{
				Title:       entry.Title,
				Path:        entry.Path,
				MatchedText: m.String(),
				Context:     contextWindow(bodyRunes, start, end),
				Start:       offset + start,
				End:         offset + end,
			})
			m, err = re.FindNextMatch(m)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Start < found[j].Start
	})
	return found
}

// titlePattern builds the match pattern for a single title: the literal
// text with metacharacters escaped, an optional author backslash tolerated
// before parentheses, guarded by zero-width assertions so that text already
// inside a bracketed reference is skipped.
func titlePattern(title string) string {
	quoted := regexp.QuoteMeta(title)
	quoted = strings.ReplaceAll(quoted, `\(`, `\\?\(`)
	quoted = strings.ReplaceAll(quoted, `\)`, `\\?\)`)
	return `(?<!\[\[)` + quoted + `(?!(?:\|[^\]]*)?\]\])`
}

// contextWindow clamps a fixed-radius window around [start, end) to the
// text bounds.
func contextWindow(runes []rune, start, end int) string {
	lo := max(start-contextRadius, 0)
	hi := min(end+contextRadius, len(runes))
	return string(runes[lo:hi])
}
