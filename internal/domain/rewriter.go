package domain

import (
	"regexp"
	"unicode"

	"github.com/dlclark/regexp2"
)

// Replacement builds the bracketed reference that replaces an occurrence.
// The alias form [[Title|matched text]] is used only when wiki link aliases
// are enabled, the matched text differs from the title, and the original
// casing should be kept on replace.
func Replacement(occ Occurrence, cfg ScanConfig) string {
	if cfg.UseWikiLinkAliases && cfg.RespectCaseOnReplace && occ.MatchedText != occ.Title {
		return "[[" + occ.Title + "|" + occ.MatchedText + "]]"
	}
	return "[[" + occ.Title + "]]"
}

// Rewrite substitutes the selected occurrences into text and returns the
// new body; the input is never mutated and Rewrite(text, nil, cfg) returns
// text unchanged. Each selected occurrence replaces every whole-word,
// case-insensitive instance of its exact matched text, in the order the
// caller supplied. When two selections share matched text with different
// replacements, the last one processed wins for all instances.
func Rewrite(text string, selected []Occurrence, cfg ScanConfig) string {
	out := text
	for _, occ := range selected {
		if occ.MatchedText == "" {
			continue
		}
		re, err := regexp2.Compile(rewritePattern(occ.MatchedText), regexp2.IgnoreCase)
		if err != nil {
			continue
		}
		repl := Replacement(occ, cfg)
		replaced, err := re.ReplaceFunc(out, func(regexp2.Match) string { return repl }, -1, -1)
		if err != nil {
			continue
		}
		out = replaced
	}
	return out
}

// rewritePattern builds the substitution pattern for a matched text. A word
// boundary is asserted only at edges where the text itself has a word rune;
// \b next to a parenthesis or other punctuation can never match and would
// turn the substitution into a silent no-op.
func rewritePattern(matched string) string {
	runes := []rune(matched)
	pattern := regexp.QuoteMeta(matched)
	if isWordRune(runes[0]) {
		pattern = `\b` + pattern
	}
	if isWordRune(runes[len(runes)-1]) {
		pattern += `\b`
	}
	return pattern
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
