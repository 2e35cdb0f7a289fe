// Package catalog holds the immutable, sorted set of posts and singleton
// pages built from one content load.
package catalog

import (
	"sort"
	"time"

	"github.com/papapumpkin/folio/internal/content"
)

// Defaults applied to posts with missing metadata.
const (
	DefaultTitle = "Untitled"
	DefaultDate  = "1970-01-01"
)

// Post is a loaded document with defaults applied and its display text
// normalized. Posts are never mutated after construction.
type Post struct {
	Slug  string
	Title string
	Date  string // as written in front matter, or DefaultDate
	Text  string // normalized body

	published time.Time
	dated     bool
}

// Published returns the parsed calendar date and whether the post has a
// valid one. Undated posts sort after every dated post.
func (p Post) Published() (time.Time, bool) {
	return p.published, p.dated
}

// Catalog is the canonical, newest-first list of posts plus the about and
// now pages. It is safe for concurrent reads.
type Catalog struct {
	posts  []Post
	bySlug map[string]int
	about  string
	now    string
}

// New builds a catalog from a loaded content source.
func New(src content.Source) *Catalog {
	posts := make([]Post, 0, len(src.Posts))
	for _, doc := range src.Posts {
		posts = append(posts, newPost(doc))
	}

	// Dated before undated, newest first, then slug for a deterministic
	// order among posts sharing a date.
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if a.dated != b.dated {
			return a.dated
		}
		if !a.published.Equal(b.published) {
			return a.published.After(b.published)
		}
		return a.Slug < b.Slug
	})

	bySlug := make(map[string]int, len(posts))
	for i, p := range posts {
		if _, dup := bySlug[p.Slug]; !dup {
			bySlug[p.Slug] = i
		}
	}

	return &Catalog{
		posts:  posts,
		bySlug: bySlug,
		about:  pageText(src.About),
		now:    pageText(src.Now),
	}
}

func newPost(doc content.Document) Post {
	p := Post{
		Slug:  doc.Slug,
		Title: doc.Title,
		Date:  doc.Date,
		Text:  content.Normalize(doc.Body),
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Date == "" {
		p.Date = DefaultDate
	} else {
		p.published, p.dated = content.ParseDate(p.Date)
	}
	return p
}

func pageText(doc *content.Document) string {
	if doc == nil {
		return ""
	}
	return content.Normalize(doc.Body)
}

// Len returns the number of posts.
func (c *Catalog) Len() int {
	return len(c.posts)
}

// Posts returns all posts sorted newest first. The slice is a copy.
func (c *Catalog) Posts() []Post {
	out := make([]Post, len(c.posts))
	copy(out, c.posts)
	return out
}

// PostBySlug returns the post with the given slug.
func (c *Catalog) PostBySlug(slug string) (Post, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return c.posts[i], true
}

// IndexOf returns the sorted position of the post with the given slug.
func (c *Catalog) IndexOf(slug string) (int, bool) {
	i, ok := c.bySlug[slug]
	return i, ok
}

// PostByIndex returns the i-th post in sorted order. It reports false for
// negative or out-of-range indices.
func (c *Catalog) PostByIndex(i int) (Post, bool) {
	if i < 0 || i >= len(c.posts) {
		return Post{}, false
	}
	return c.posts[i], true
}

// About returns the normalized about page text, or "" when absent.
func (c *Catalog) About() string {
	return c.about
}

// Now returns the normalized now page text, or "" when absent.
func (c *Catalog) Now() string {
	return c.now
}
