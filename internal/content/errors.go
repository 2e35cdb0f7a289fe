package content

import "errors"

// Sentinel errors for content loading.
var (
	// ErrNoFrontmatterEnd indicates an opening front-matter delimiter with no closing one.
	ErrNoFrontmatterEnd = errors.New("missing closing front-matter delimiter")
	// ErrMissingTitle indicates a document without a title field.
	ErrMissingTitle = errors.New("front matter has no title")
	// ErrMissingDate indicates a document without a date field.
	ErrMissingDate = errors.New("front matter has no date")
	// ErrInvalidDate indicates a date field that is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("date is not a YYYY-MM-DD calendar date")
)

// IssueCategory classifies a load issue for programmatic handling.
type IssueCategory string

const (
	// IssueMissingTitle means the title will default to "Untitled".
	IssueMissingTitle IssueCategory = "missing_title"
	// IssueMissingDate means the document sorts after every dated post.
	IssueMissingDate IssueCategory = "missing_date"
	// IssueInvalidDate means the date is shown verbatim but sorts last.
	IssueInvalidDate IssueCategory = "invalid_date"
	// IssueMalformedFrontmatter means the header could not be parsed and defaults apply.
	IssueMalformedFrontmatter IssueCategory = "malformed_frontmatter"
	// IssueUnreadable means the file could not be read and was skipped.
	IssueUnreadable IssueCategory = "unreadable"
)

// Issue records a non-fatal problem found while loading a document. Loading
// never fails because of a single document; it degrades to defaults instead.
type Issue struct {
	Category IssueCategory
	File     string
	Err      error
}

// Error returns a human-readable string including the source file.
func (e *Issue) Error() string {
	return e.File + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *Issue) Unwrap() error {
	return e.Err
}
