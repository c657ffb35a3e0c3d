package domain

import (
	"strings"
	"unicode/utf8"
)

// frontmatterFence delimits a YAML frontmatter block.
const frontmatterFence = "---"

// StripFrontmatter removes a single leading frontmatter block and returns
// the remaining body together with the rune offset at which it starts in
// the original text. The strip is structural: only the first block, only
// when the opening fence sits at offset 0 and the closing fence is a full
// line. Text without such a block is returned unchanged with offset 0.
func StripFrontmatter(text string) (body string, start int) {
	if !strings.HasPrefix(text, frontmatterFence+"\n") {
		return text, 0
	}

	// Search from the opening fence's own newline so that a closing fence
	// on the very next line is still found.
	searchFrom := len(frontmatterFence)
	for {
		idx := strings.Index(text[searchFrom:], "\n"+frontmatterFence)
		if idx < 0 {
			return text, 0
		}
		fenceEnd := searchFrom + idx + 1 + len(frontmatterFence)

		// The closing fence counts only when it ends the line.
		if fenceEnd == len(text) {
			return "", utf8.RuneCountInString(text)
		}
		if text[fenceEnd] == '\n' {
			return text[fenceEnd+1:], utf8.RuneCountInString(text[:fenceEnd+1])
		}

		searchFrom += idx + 1
	}
}
