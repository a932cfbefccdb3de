package icon

import (
	"embed"
	"io/fs"
)

//go:embed static/img/*.svg
var embeddedImages embed.FS

// Built-in illustration references bundled with the package.
const (
	Mountain Ref = "undraw_docusaurus_mountain.svg"
	Tree     Ref = "undraw_docusaurus_tree.svg"
	React    Ref = "undraw_docusaurus_react.svg"
)

// EmbeddedFS exposes the bundled SVG illustrations rooted at their file names.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedImages, "static/img")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
