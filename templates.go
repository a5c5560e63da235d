package itemlist

import (
	"io/fs"

	"github.com/goliatone/go-itemlist/pkg/view/html"
)

// EmbeddedTemplates exposes the built-in widget and row templates so callers
// can reuse or extend them without importing the html package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
