package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/papapumpkin/folio/internal/ansi"
	"github.com/papapumpkin/folio/internal/catalog"
	"github.com/papapumpkin/folio/internal/content"
)

func TestPosts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cat := catalog.New(content.Source{Posts: []content.Document{
		{Slug: "old", Title: "Old Post", Date: "2024-12-15", Body: "OLD\n===\n\nOlder words."},
		{Slug: "new", Title: "New Post", Date: "2025-01-20", Body: "NEW\n===\n\n" + strings.Repeat("word ", 40)},
	}})
	NewWriter(&buf).Posts(cat)
	output := ansi.Strip(buf.String())

	checks := []struct {
		name   string
		substr string
	}{
		{"first entry", "[001]  2025.01.20  New Post (new)"},
		{"second entry", "[002]  2024.12.15  Old Post (old)"},
		{"preview", "Older words."},
	}
	for _, c := range checks {
		if !strings.Contains(output, c.substr) {
			t.Errorf("expected output to contain %s (%q), got:\n%s", c.name, c.substr, output)
		}
	}
	for _, line := range strings.Split(output, "\n") {
		if len(line) > previewWidth+7 {
			t.Errorf("preview line not wrapped: %q", line)
		}
	}
}

func TestPosts_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewWriter(&buf).Posts(catalog.New(content.Source{}))
	if !strings.Contains(buf.String(), "(no posts)") {
		t.Errorf("got %q", buf.String())
	}
}

func TestValidateResult(t *testing.T) {
	t.Parallel()

	t.Run("clean", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		NewWriter(&buf).ValidateResult(4, nil)
		if !strings.Contains(buf.String(), "content ok") {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("issues", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		NewWriter(&buf).ValidateResult(2, []content.Issue{
			{Category: content.IssueMissingTitle, File: "blog/a.md", Err: content.ErrMissingTitle},
		})
		output := ansi.Strip(buf.String())
		for _, want := range []string{"1 issue(s)", "missing_title", "blog/a.md: front matter has no title"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}
	})
}

func TestBanner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewWriter(&buf).Banner("FOLIO", []string{"Software Engineer"})
	output := ansi.Strip(buf.String())
	if !strings.Contains(output, "║  FOLIO  ║") || !strings.Contains(output, "Software Engineer") {
		t.Errorf("banner = %q", output)
	}
}
