package views

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Reactoid holds what the comment widget needs to identify the project.
// Values are passed to the browser as-is.
type Reactoid struct {
	ClientID      string
	ClientSecret  string
	ProjectID     string
	StylesheetURL string // defaults to DefaultStylesheetURL
}

const (
	// DefaultStylesheetURL is the widget's published stylesheet.
	DefaultStylesheetURL = "https://esm.sh/@reacttoid/react/dist/reactoid.css"

	// ReactoidScriptPath is where the host serves the mount script.
	ReactoidScriptPath = "/public/reactoid.js"
)
