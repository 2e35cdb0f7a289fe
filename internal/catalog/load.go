package catalog

import (
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/papapumpkin/folio/internal/content"
)

// Load reads fsys once and builds a catalog. The returned issues describe
// documents that loaded with defaults.
func Load(fsys fs.FS, logger *zap.Logger) (*Catalog, []content.Issue, error) {
	src, err := content.Loader{FS: fsys, Logger: logger}.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading content: %w", err)
	}
	return New(src), src.Issues, nil
}
