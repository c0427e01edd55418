package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/reactporiyaalar/blog/site"
)

// Layout wraps body in the site's HTML shell with SEO and social metadata.
func Layout(meta PageMeta, jsonLD string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := meta.Title
		if title != site.Title {
			title += " | " + site.Title
		}
		description := meta.Description
		if description == "" {
			description = site.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		h := &htmlWriter{w: w}
		h.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><meta name="description"`)
		h.attr("content", description)
		h.raw(`><meta name="author"`)
		h.attr("content", site.AuthorName)
		h.raw(`><link rel="canonical"`)
		h.attr("href", meta.URL)
		h.raw(`><link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
		h.raw(`<meta property="og:type"`)
		h.attr("content", ogType)
		h.raw(`><meta property="og:title"`)
		h.attr("content", title)
		h.raw(`><meta property="og:description"`)
		h.attr("content", description)
		h.raw(`><meta property="og:url"`)
		h.attr("content", meta.URL)
		h.raw(`><meta property="og:site_name"`)
		h.attr("content", site.Title)
		h.raw(`><meta name="twitter:card" content="summary"><meta name="twitter:site"`)
		h.attr("content", site.TwitterHandle)
		h.raw(`><meta name="twitter:creator"`)
		h.attr("content", site.TwitterHandle)
		h.raw(`><script type="application/ld+json">`)
		// json.Marshal escapes <, > and &, so the block cannot close the script early.
		h.raw(jsonLD)
		h.raw(`</script></head><body><header><a href="/">`)
		h.text(site.Title)
		h.raw(`</a></header><main>`)
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main><footer><p>&copy; `)
		h.text(site.AuthorName)
		h.raw(` &middot; <a`)
		h.attr("href", "https://twitter.com/"+trimAt(site.TwitterHandle))
		h.raw(`>`)
		h.text(site.TwitterHandle)
		h.raw(`</a></p></footer></body></html>`)
		return h.err
	})
}

// Home is the landing page.
func Home() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section><h1>`)
		h.text(site.Title)
		h.raw(`</h1><p>`)
		h.text(site.Description)
		h.raw(`</p><p>Written by `)
		h.text(site.AuthorName)
		h.raw(`</p></section>`)
		return h.err
	})
	return Layout(PageMeta{
		Title:       site.Title,
		Description: site.Description,
		URL:         PageURL("/"),
		OGType:      "website",
	}, WebsiteJsonLD(), body)
}

// Post renders the page at slug with the comment widget below it.
func Post(slug string, creds Reactoid) templ.Component {
	title := TitleFromSlug(slug)
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<article><h1>`)
		h.text(title)
		h.raw(`</h1></article><section id="comments">`)
		if h.err != nil {
			return h.err
		}
		if err := EmbedReactToid(creds, slug).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</section>`)
		return h.err
	})
	return Layout(PageMeta{
		Title:  title,
		URL:    PageURL(slug),
		OGType: "article",
	}, ArticleJsonLD(slug), body)
}

// NotFound is rendered for unknown routes.
func NotFound() templ.Component {
	return errorPage("Page not found", "The page you are looking for does not exist.")
}

// ServerError is rendered when a handler fails.
func ServerError() templ.Component {
	return errorPage("Something went wrong", "Please try again in a moment.")
}

func errorPage(heading, message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section><h1>`)
		h.text(heading)
		h.raw(`</h1><p>`)
		h.text(message)
		h.raw(`</p><p><a href="/">Back home</a></p></section>`)
		return h.err
	})
	return Layout(PageMeta{Title: heading, URL: PageURL("/")}, WebsiteJsonLD(), body)
}

func trimAt(handle string) string {
	if len(handle) > 0 && handle[0] == '@' {
		return handle[1:]
	}
	return handle
}
