package chartopts

import (
	"io/fs"

	"github.com/goliatone/go-chartopts/pkg/renderers/fragment"
	"github.com/goliatone/go-chartopts/pkg/renderers/page"
)

// PageTemplates exposes the built-in page template so callers can copy or
// extend it and pass the result back through page.WithTemplatesFS.
func PageTemplates() fs.FS {
	return page.TemplatesFS()
}

// FragmentTemplates exposes the built-in fragment template.
func FragmentTemplates() fs.FS {
	return fragment.TemplatesFS()
}
