package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"go.uber.org/zap"
)

// Content layout within a source file system.
const (
	BlogDir  = "blog"
	AboutDir = "about"
	NowDir   = "now"
)

// extensions are the document file extensions, in lookup preference order.
var extensions = []string{".mdx", ".md"}

// Document is a static content unit: a blog post or a singleton page. Body
// has front matter removed, line endings normalized, and surrounding
// whitespace trimmed, but has not been through Normalize.
type Document struct {
	Slug  string
	Title string
	Date  string
	Body  string
	File  string
}

// Source is everything read from a content file system in one load.
type Source struct {
	Posts  []Document // in directory order
	About  *Document  // nil when absent
	Now    *Document  // nil when absent
	Issues []Issue
}

// Loader reads documents from a file system laid out as blog/*.md(x),
// about/index.md(x), and now/index.md(x).
type Loader struct {
	FS     fs.FS
	Logger *zap.Logger
}

// Load reads every document once. Individual bad documents are recorded as
// issues and loaded with defaults; only an unreadable blog directory fails.
func (l Loader) Load() (Source, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var src Source

	entries, err := fs.ReadDir(l.FS, BlogDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Source{}, fmt.Errorf("reading %s directory: %w", BlogDir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !isDocument(e.Name()) {
			continue
		}
		file := path.Join(BlogDir, e.Name())
		doc, issues, ok := l.readDocument(file)
		src.Issues = append(src.Issues, issues...)
		if !ok {
			continue
		}
		doc.Slug = strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		src.Issues = append(src.Issues, checkPostMeta(doc)...)
		src.Posts = append(src.Posts, doc)
	}

	src.About = l.readSingleton(AboutDir, &src)
	src.Now = l.readSingleton(NowDir, &src)

	for i := range src.Issues {
		log.Warn("content issue",
			zap.String("file", src.Issues[i].File),
			zap.String("category", string(src.Issues[i].Category)),
			zap.Error(src.Issues[i].Err))
	}
	log.Debug("content loaded",
		zap.Int("posts", len(src.Posts)),
		zap.Bool("about", src.About != nil),
		zap.Bool("now", src.Now != nil))

	return src, nil
}

// readSingleton loads dir/index.mdx or dir/index.md, whichever exists first.
func (l Loader) readSingleton(dir string, src *Source) *Document {
	for _, ext := range extensions {
		file := path.Join(dir, "index"+ext)
		if _, err := fs.Stat(l.FS, file); err != nil {
			continue
		}
		doc, issues, ok := l.readDocument(file)
		src.Issues = append(src.Issues, issues...)
		if !ok {
			return nil
		}
		doc.Slug = dir
		return &doc
	}
	return nil
}

// readDocument reads and splits one file. ok is false only when the file
// could not be read at all.
func (l Loader) readDocument(file string) (doc Document, issues []Issue, ok bool) {
	data, err := fs.ReadFile(l.FS, file)
	if err != nil {
		return Document{}, []Issue{{Category: IssueUnreadable, File: file, Err: err}}, false
	}

	raw := strings.ReplaceAll(string(data), "\r\n", "\n")
	doc.File = file

	delim, fm, body, err := splitFrontmatter(raw)
	if err != nil {
		issues = append(issues, Issue{Category: IssueMalformedFrontmatter, File: file, Err: err})
		body = raw
	} else {
		meta, err := parseMeta(delim, fm)
		if err != nil {
			issues = append(issues, Issue{Category: IssueMalformedFrontmatter, File: file, Err: err})
		}
		doc.Title = meta.Title
		doc.Date = meta.Date
	}

	doc.Body = strings.TrimSpace(body)
	return doc, issues, true
}

// checkPostMeta reports metadata that will fall back to defaults.
func checkPostMeta(doc Document) []Issue {
	var issues []Issue
	if doc.Title == "" {
		issues = append(issues, Issue{Category: IssueMissingTitle, File: doc.File, Err: ErrMissingTitle})
	}
	switch {
	case doc.Date == "":
		issues = append(issues, Issue{Category: IssueMissingDate, File: doc.File, Err: ErrMissingDate})
	default:
		if _, ok := ParseDate(doc.Date); !ok {
			issues = append(issues, Issue{
				Category: IssueInvalidDate,
				File:     doc.File,
				Err:      fmt.Errorf("%w: %q", ErrInvalidDate, doc.Date),
			})
		}
	}
	return issues
}

func isDocument(name string) bool {
	ext := path.Ext(name)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
