package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/reactporiyaalar/blog/site"
)

// PageURL returns the absolute URL of the page at pagePath. pagePath is used
// as the browser sent it: it is already percent-encoded and its trailing
// slash, or lack of one, is significant.
func PageURL(pagePath string) string {
	if !strings.HasPrefix(pagePath, "/") {
		pagePath = "/" + pagePath
	}
	return site.URL + pagePath
}

// TitleFromSlug turns the last path segment into a heading:
// "/posts/my-first-post" becomes "My First Post".
func TitleFromSlug(slug string) string {
	last := path.Base(strings.TrimRight(slug, "/"))
	if last == "." || last == "/" {
		return site.Title
	}
	if unescaped, err := url.PathUnescape(last); err == nil {
		last = unescaped
	}
	words := strings.FieldsFunc(last, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	if len(words) == 0 {
		return site.Title
	}
	return strings.Join(words, " ")
}

func author() map[string]string {
	return map[string]string{
		"@type":         "Person",
		"name":          site.AuthorName,
		"alternateName": site.TwitterHandle,
	}
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for the site.
func WebsiteJsonLD() string {
	return marshalJsonLD(map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        site.Title,
		"url":         PageURL("/"),
		"description": site.Description,
		"author":      author(),
	})
}

// ArticleJsonLD produces a Schema.org BlogPosting JSON-LD block for the page at slug.
func ArticleJsonLD(slug string) string {
	pageURL := PageURL(slug)
	return marshalJsonLD(map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "BlogPosting",
		"headline": TitleFromSlug(slug),
		"url":      pageURL,
		"author":   author(),
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  site.Title,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   pageURL,
		},
	})
}

func marshalJsonLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
