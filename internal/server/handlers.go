package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/papapumpkin/folio/internal/cascade"
	"github.com/papapumpkin/folio/internal/site"
	"github.com/papapumpkin/folio/internal/writing"
)

// LineJSON is one classified display line.
type LineJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// PageJSON is a page's display text and its classified lines.
type PageJSON struct {
	Page  string     `json:"page"`
	Index *int       `json:"index,omitempty"`
	Text  string     `json:"text"`
	Lines []LineJSON `json:"lines"`
}

// PostJSON summarizes one post in catalog order.
type PostJSON struct {
	Index int    `json:"index"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// page serves about, writing, and now. Posts are served by index.
func (s *Server) page(c *gin.Context) {
	page, err := site.ParsePage(c.Param("page"))
	if err != nil || page == site.PagePost {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown page " + strconv.Quote(c.Param("page"))})
		return
	}
	s.render(c, http.StatusOK, newPage(page.String(), nil, s.site.Text(page, 0)))
}

func (s *Server) posts(c *gin.Context) {
	posts := s.site.Catalog().Posts()
	out := make([]PostJSON, len(posts))
	for i, p := range posts {
		out[i] = PostJSON{Index: i, Slug: p.Slug, Title: p.Title, Date: writing.FormatDate(p.Date)}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) post(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		s.render(c, http.StatusNotFound, newPage(site.PagePost.String(), nil, site.NotFound))
		return
	}
	text := s.site.Text(site.PagePost, i)
	status := http.StatusOK
	if text == site.NotFound {
		status = http.StatusNotFound
	}
	s.render(c, status, newPage(site.PagePost.String(), &i, text))
}

func (s *Server) slug(c *gin.Context) {
	cat := s.site.Catalog()
	i, ok := cat.IndexOf(c.Param("slug"))
	if !ok {
		s.render(c, http.StatusNotFound, newPage(site.PagePost.String(), nil, site.NotFound))
		return
	}
	p, _ := cat.PostByIndex(i)
	s.render(c, http.StatusOK, newPage(site.PagePost.String(), &i, p.Text))
}

// render writes the page as JSON, or as plain text when ?format=text.
func (s *Server) render(c *gin.Context, status int, p PageJSON) {
	if c.Query("format") == "text" {
		c.String(status, "%s", p.Text)
		return
	}
	c.JSON(status, p)
}

func newPage(name string, index *int, text string) PageJSON {
	lines := cascade.Split(text)
	out := PageJSON{Page: name, Index: index, Text: text, Lines: make([]LineJSON, len(lines))}
	for i, l := range lines {
		out.Lines[i] = LineJSON{Kind: l.Kind.String(), Text: l.Text}
	}
	return out
}
