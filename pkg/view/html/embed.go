package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Template names resolved through the theme partials.
const (
	PartialWidget = "itemlist.widget"
	PartialRow    = "itemlist.row"

	// AssetStylesheet is the theme asset key linked from the widget.
	AssetStylesheet = "itemlist.stylesheet"
)

// TemplatesFS returns the built-in widget templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// DefaultPartials maps partial keys to the built-in template names.
func DefaultPartials() map[string]string {
	return map[string]string{
		PartialWidget: "widget",
		PartialRow:    "row",
	}
}
