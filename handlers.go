package blog

import (
	"bytes"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/reactporiyaalar/blog/site"
	"github.com/reactporiyaalar/blog/views"
)

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET(views.ReactoidScriptPath, echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", handleRobots)
	e.GET("/sitemap.xml", handleSitemap)

	e.GET("/", handleHome)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/posts/*", a.handlePost)
}

func handleHome(c echo.Context) error {
	return Render(c, views.Home())
}

// handlePost renders any page under /posts/. The request path, as the
// browser sees it, identifies the page's comment thread.
func (a *App) handlePost(c echo.Context) error {
	if c.Param("*") == "" {
		return c.Redirect(http.StatusMovedPermanently, "/")
	}
	slug := c.Request().URL.EscapedPath()
	return Render(c, views.Post(slug, a.Config.Reactoid.view()))
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.Config.StaticDir, "favicon.svg"))
}

func handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", site.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	// Error pages must not outlive the failure that produced them.
	c.Response().Header().Set("Cache-Control", "no-store")
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		_ = RenderStatus(c, code, views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
// The component is rendered to a buffer first so a failed render reaches the
// error handler instead of producing a truncated page.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}
