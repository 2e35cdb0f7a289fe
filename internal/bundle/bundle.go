// Package bundle embeds the default site content so the binary can run with
// no content directory configured.
package bundle

import (
	"embed"
	"io/fs"
)

//go:embed content
var files embed.FS

// FS returns the embedded content rooted at the directory that holds blog/,
// about/, and now/.
func FS() fs.FS {
	sub, err := fs.Sub(files, "content")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}
