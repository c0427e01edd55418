// Package site holds the blog's global metadata. Pages import these values
// so branding stays consistent everywhere it is shown.
package site

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	Title         = "Vijayakrishna's Blog"
	Description   = "Welcome to my blog! I write about developer tools and developer experience related topics"
	TwitterHandle = "@reactporiyaalar"
	AuthorName    = "Vijay Krish"
)

// configured is the full site URL, set at build time via
// -ldflags "-X github.com/reactporiyaalar/blog/site.configured=https://...".
// SITE in the environment or in ./.env takes precedence.
var configured = "https://vijaykrish.dev/"

// URL is the site origin: scheme and host of the configured site URL.
var URL = MustOrigin(siteURL())

// ErrInvalidSiteURL is returned when the configured site URL has no scheme or host.
var ErrInvalidSiteURL = errors.New("invalid site url")

// siteURL runs during package initialization, before main has a chance to
// load .env, so it reads the file itself. The process environment wins,
// as it does with godotenv.Load.
func siteURL() string {
	if v := os.Getenv("SITE"); v != "" {
		return v
	}
	if vars, err := godotenv.Read(); err == nil && vars["SITE"] != "" {
		return vars["SITE"]
	}
	return configured
}

var defaultPorts = map[string]int{"http": 80, "https": 443}

// Origin returns scheme://host[:port] for raw, dropping path, query and
// fragment. Scheme and host are lower-cased and a default port is omitted.
func Origin(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidSiteURL, raw, err)
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return "", fmt.Errorf("%w %q: scheme and host are required", ErrInvalidSiteURL, raw)
	}
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())

	port := u.Port()
	if port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n > 65535 {
			return "", fmt.Errorf("%w %q: bad port %q", ErrInvalidSiteURL, raw, port)
		}
		if d, ok := defaultPorts[scheme]; ok && n == d {
			port = ""
		} else {
			port = strconv.Itoa(n)
		}
	}

	if port != "" {
		return scheme + "://" + net.JoinHostPort(host, port), nil
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return scheme + "://" + host, nil
}

// MustOrigin is like Origin but panics if raw is not an absolute URL.
func MustOrigin(raw string) string {
	origin, err := Origin(raw)
	if err != nil {
		panic("site: " + err.Error())
	}
	return origin
}
