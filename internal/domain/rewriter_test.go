package domain

import "testing"

func TestReplacement(t *testing.T) {
	occ := Occurrence{Title: "Project Alpha", MatchedText: "project alpha"}
	exact := Occurrence{Title: "Project Alpha", MatchedText: "Project Alpha"}

	tests := []struct {
		name string
		occ  Occurrence
		cfg  ScanConfig
		want string
	}{
		{
			name: "plain form by default",
			occ:  occ,
			cfg:  ScanConfig{},
			want: "[[Project Alpha]]",
		},
		{
			name: "alias needs both settings",
			occ:  occ,
			cfg:  ScanConfig{UseWikiLinkAliases: true},
			want: "[[Project Alpha]]",
		},
		{
			name: "respect case alone is not enough",
			occ:  occ,
			cfg:  ScanConfig{RespectCaseOnReplace: true},
			want: "[[Project Alpha]]",
		},
		{
			name: "alias form when casing differs",
			occ:  occ,
			cfg:  ScanConfig{UseWikiLinkAliases: true, RespectCaseOnReplace: true},
			want: "[[Project Alpha|project alpha]]",
		},
		{
			name: "no alias when text matches title exactly",
			occ:  exact,
			cfg:  ScanConfig{UseWikiLinkAliases: true, RespectCaseOnReplace: true},
			want: "[[Project Alpha]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Replacement(tt.occ, tt.cfg); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRewrite_EmptySelectionReturnsInput(t *testing.T) {
	text := "Project Alpha is mentioned here."
	if got := Rewrite(text, nil, ScanConfig{}); got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestRewrite_ReplacesAllInstancesOfMatchedText(t *testing.T) {
	text := "Project Alpha leads. project alpha follows."
	selected := []Occurrence{{Title: "Project Alpha", MatchedText: "Project Alpha"}}

	got := Rewrite(text, selected, ScanConfig{})
	want := "[[Project Alpha]] leads. [[Project Alpha]] follows."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRewrite_WholeWordOnly(t *testing.T) {
	text := "Alphabet starts with Alpha."
	selected := []Occurrence{{Title: "Alpha", MatchedText: "Alpha"}}

	got := Rewrite(text, selected, ScanConfig{})
	want := "Alphabet starts with [[Alpha]]."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRewrite_MultipleTitles(t *testing.T) {
	text := "Alpha depends on Beta."
	selected := []Occurrence{
		{Title: "Alpha", MatchedText: "Alpha"},
		{Title: "Beta", MatchedText: "Beta"},
	}

	got := Rewrite(text, selected, ScanConfig{})
	want := "[[Alpha]] depends on [[Beta]]."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRewrite_ThenScanFindsNothing(t *testing.T) {
	text := "Project Alpha kickoff, with Project Alpha milestones."
	ents := entries("Project Alpha", "a.md")
	cfg := ScanConfig{}

	occurrences := Scan(text, ents, cfg)
	if len(occurrences) == 0 {
		t.Fatal("expected occurrences before rewrite")
	}

	rewritten := Rewrite(text, occurrences[:1], cfg)
	if remaining := Scan(rewritten, ents, cfg); len(remaining) != 0 {
		t.Errorf("expected no occurrences after rewrite, found %d in %q", len(remaining), rewritten)
	}
}

func TestRewrite_ParenthesizedTitle(t *testing.T) {
	text := "Notes from Meeting (Weekly) follow."
	ents := entries("Meeting (Weekly)", "m.md")
	cfg := ScanConfig{}

	occurrences := Scan(text, ents, cfg)
	if len(occurrences) != 1 {
		t.Fatalf("expected the scanner to offer the title, got %d occurrences", len(occurrences))
	}

	got := Rewrite(text, occurrences, cfg)
	want := "Notes from [[Meeting (Weekly)]] follow."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRewritePattern_EdgeAnchoring(t *testing.T) {
	tests := []struct {
		matched string
		want    string
	}{
		{"Alpha", `\bAlpha\b`},
		{"Meeting (Weekly)", `\bMeeting \(Weekly\)`},
		{"(draft)", `\(draft\)`},
		{"v1.2 plan", `\bv1\.2 plan\b`},
	}

	for _, tt := range tests {
		t.Run(tt.matched, func(t *testing.T) {
			if got := rewritePattern(tt.matched); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRewrite_AliasForm(t *testing.T) {
	text := "discussed project alpha today"
	selected := []Occurrence{{Title: "Project Alpha", MatchedText: "project alpha"}}
	cfg := ScanConfig{UseWikiLinkAliases: true, RespectCaseOnReplace: true}

	got := Rewrite(text, selected, cfg)
	want := "discussed [[Project Alpha|project alpha]] today"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
