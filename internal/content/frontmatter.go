package content

import (
	"fmt"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DateLayout is the calendar-date layout used in front matter.
const DateLayout = "2006-01-02"

// Frontmatter formats, keyed by their delimiter line.
const (
	delimYAML = "---"
	delimTOML = "+++"
)

// Meta holds the front-matter fields the site understands. Empty strings
// mean the field was absent.
type Meta struct {
	Title string
	Date  string
}

// splitFrontmatter separates a leading front-matter block from the body.
// Expected formats:
//
//	---            +++
//	<YAML>         <TOML>
//	---            +++
//	<body>         <body>
//
// A document that does not open with a delimiter line has no front matter and
// the whole content is returned as body with an empty delimiter.
func splitFrontmatter(content string) (delim, frontmatter, body string, err error) {
	content = strings.TrimLeft(content, " \t\r\n")
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 {
		return "", "", content, nil
	}

	first := strings.TrimSpace(lines[0])
	if first != delimYAML && first != delimTOML {
		return "", "", content, nil
	}

	var fm strings.Builder
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == first {
			return first, fm.String(), strings.Join(lines[i+1:], ""), nil
		}
		fm.WriteString(lines[i])
	}
	return first, "", "", ErrNoFrontmatterEnd
}

// parseMeta decodes a front-matter block in the format named by delim.
func parseMeta(delim, frontmatter string) (Meta, error) {
	if strings.TrimSpace(frontmatter) == "" {
		return Meta{}, nil
	}

	fields := make(map[string]any)
	switch delim {
	case delimYAML:
		if err := yaml.Unmarshal([]byte(frontmatter), &fields); err != nil {
			return Meta{}, fmt.Errorf("parsing YAML front matter: %w", err)
		}
	case delimTOML:
		if err := toml.Unmarshal([]byte(frontmatter), &fields); err != nil {
			return Meta{}, fmt.Errorf("parsing TOML front matter: %w", err)
		}
	default:
		return Meta{}, nil
	}

	return Meta{
		Title: scalarString(fields["title"]),
		Date:  dateString(fields["date"]),
	}, nil
}

// dateString renders a decoded date value as YYYY-MM-DD when it is a real
// date, and as its trimmed text otherwise.
func dateString(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case time.Time:
		return d.Format(DateLayout)
	case toml.LocalDate:
		return d.String()
	case toml.LocalDateTime:
		return d.LocalDate.String()
	case string:
		s := strings.TrimSpace(d)
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.Format(DateLayout)
		}
		return s
	default:
		return scalarString(v)
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
