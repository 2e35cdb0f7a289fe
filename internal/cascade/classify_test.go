package cascade

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Line
	}{
		{"", Line{Kind: KindBlank}},
		{"   ", Line{Kind: KindBlank}},
		{"===", Line{Kind: KindThick, Text: "==="}},
		{"  =====  ", Line{Kind: KindThick, Text: "====="}},
		{"═══", Line{Kind: KindThick, Text: "═══"}},
		{"---", Line{Kind: KindThin, Text: "---"}},
		{"────", Line{Kind: KindThin, Text: "────"}},
		{"{{preview:first paragraph}}", Line{Kind: KindPreview, Text: "first paragraph"}},
		{"{{preview:}}", Line{Kind: KindPlain, Text: "{{preview:}}"}},
		{"[001]  2025.01.20", Line{Kind: KindPlain, Text: "[001]  2025.01.20"}},
		{"  indented", Line{Kind: KindPlain, Text: "  indented"}},
		{"-- two dashes", Line{Kind: KindPlain, Text: "-- two dashes"}},
	}
	for _, tt := range tests {
		if got := Classify(tt.raw); got != tt.want {
			t.Errorf("Classify(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestClassify_Pure(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"===", "{{preview:x}}", "text", "", "---"} {
		if Classify(raw) != Classify(raw) {
			t.Errorf("Classify(%q) is not deterministic", raw)
		}
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	if got := Split(""); got != nil {
		t.Errorf("Split(\"\") = %v, want nil", got)
	}
	got := Split("TITLE\n===\n\nbody")
	kinds := []Kind{KindPlain, KindThick, KindBlank, KindPlain}
	if len(got) != len(kinds) {
		t.Fatalf("Split() = %d lines, want %d", len(got), len(kinds))
	}
	for i, k := range kinds {
		if got[i].Kind != k {
			t.Errorf("line %d kind = %v, want %v", i, got[i].Kind, k)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if KindPreview.String() != "preview" || Kind(99).String() != "unknown" {
		t.Errorf("Kind strings = %q, %q", KindPreview, Kind(99))
	}
}
