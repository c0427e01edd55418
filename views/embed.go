package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// EmbedReactToid renders the ReactToid comment widget for the page identified
// by slug. The stylesheet, mount point and module script are emitted together;
// the script hands the data attributes to ReactoidContextProvider unchanged.
func EmbedReactToid(creds Reactoid, slug string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		stylesheet := creds.StylesheetURL
		if stylesheet == "" {
			stylesheet = DefaultStylesheetURL
		}
		h := &htmlWriter{w: w}
		h.raw(`<link rel="stylesheet"`)
		h.attr("href", stylesheet)
		h.raw(`><div data-reactoid`)
		h.attr("data-client-id", creds.ClientID)
		h.attr("data-client-secret", creds.ClientSecret)
		h.attr("data-project-id", creds.ProjectID)
		h.attr("data-slug", slug)
		h.raw(`></div><script type="module"`)
		h.attr("src", ReactoidScriptPath)
		h.raw(`></script>`)
		return h.err
	})
}
