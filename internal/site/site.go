// Package site is the navigation surface: it maps a page identifier and
// optional post index to the display text for that page.
package site

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/papapumpkin/folio/internal/catalog"
	"github.com/papapumpkin/folio/internal/writing"
)

// NotFound is the text returned for a post index outside the catalog.
const NotFound = "Post not found."

// ErrUnknownPage is returned by ParsePage for an unrecognized page name.
var ErrUnknownPage = errors.New("unknown page")

// Page identifies a navigable page.
type Page int

// Navigable pages, in sidebar order. PagePost is reached from the writing
// index and is not listed in the sidebar.
const (
	PageAbout Page = iota
	PageWriting
	PageNow
	PagePost
)

// NavPages are the pages shown in the navigation sidebar.
var NavPages = []Page{PageAbout, PageWriting, PageNow}

var pageNames = [...]string{
	PageAbout:   "about",
	PageWriting: "writing",
	PageNow:     "now",
	PagePost:    "post",
}

// String returns the lowercase page name.
func (p Page) String() string {
	if p < 0 || int(p) >= len(pageNames) {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageNames[p]
}

// Title returns the uppercase label used in navigation.
func (p Page) Title() string {
	return strings.ToUpper(p.String())
}

// ParsePage converts a page name into a Page. Matching is case-insensitive.
func ParsePage(name string) (Page, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range pageNames {
		if s == n {
			return Page(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPage, name)
}

// snapshot pairs a catalog with its lazily generated writing index.
type snapshot struct {
	cat   *catalog.Catalog
	once  sync.Once
	index string
}

func (s *snapshot) writingIndex() string {
	s.once.Do(func() {
		s.index = writing.Generate(s.cat)
	})
	return s.index
}

// Site serves page text from the current catalog. The catalog can be
// replaced at any time with Swap; readers always see one consistent
// catalog per call.
type Site struct {
	cur atomic.Pointer[snapshot]
}

// New returns a Site serving cat.
func New(cat *catalog.Catalog) *Site {
	s := &Site{}
	s.Swap(cat)
	return s
}

// Swap replaces the catalog.
func (s *Site) Swap(cat *catalog.Catalog) {
	s.cur.Store(&snapshot{cat: cat})
}

// Catalog returns the current catalog.
func (s *Site) Catalog() *catalog.Catalog {
	return s.cur.Load().cat
}

// Text returns the display text for page. index is used only for PagePost,
// where an out-of-range index yields NotFound.
func (s *Site) Text(page Page, index int) string {
	snap := s.cur.Load()
	switch page {
	case PageAbout:
		return snap.cat.About()
	case PageWriting:
		return snap.writingIndex()
	case PageNow:
		return snap.cat.Now()
	case PagePost:
		p, ok := snap.cat.PostByIndex(index)
		if !ok {
			return NotFound
		}
		return p.Text
	default:
		return ""
	}
}

// Resolve parses name and returns the page text.
func (s *Site) Resolve(name string, index int) (string, error) {
	page, err := ParsePage(name)
	if err != nil {
		return "", err
	}
	return s.Text(page, index), nil
}
