package blog

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactporiyaalar/blog/site"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	cfg := Config{
		StaticDir: t.TempDir(),
		Reactoid: ReactoidConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			ProjectID:    "project-id",
		},
	}
	return New(cfg, append([]Option{WithLogger(zerolog.Nop())}, opts...)...)
}

func get(t *testing.T, app *App, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	return rec
}

func TestPostPassesRequestPathAsSlug(t *testing.T) {
	rec := get(t, newTestApp(t), "/posts/my-post")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-slug="/posts/my-post"`)
	assert.Contains(t, body, `data-client-id="client-id"`)
	assert.Contains(t, body, `data-client-secret="client-secret"`)
	assert.Contains(t, body, `data-project-id="project-id"`)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
}

func TestPostKeepsEscapedPath(t *testing.T) {
	rec := get(t, newTestApp(t), "/posts/go%20notes")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-slug="/posts/go%20notes"`)
	assert.Contains(t, rec.Body.String(), `<link rel="canonical" href="`+site.URL+`/posts/go%20notes">`)
}

func TestPostsIndexRedirectsHome(t *testing.T) {
	rec := get(t, newTestApp(t), "/posts/")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestHomeRendersBranding(t *testing.T) {
	rec := get(t, newTestApp(t), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), site.Description)
	assert.NotContains(t, rec.Body.String(), "data-reactoid")
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentSecurityPolicy), "https://esm.sh")
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	rec := get(t, newTestApp(t), "/does-not-exist")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestServerErrorRendersErrorPage(t *testing.T) {
	app := newTestApp(t, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/boom", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusBadGateway, "upstream")
		})
	}))
	rec := get(t, app, "/boom")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestClientErrorIsNotCached(t *testing.T) {
	app := newTestApp(t, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/teapot", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusTeapot, "short and stout")
		})
	}))
	rec := get(t, app, "/teapot")

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestReactoidScriptIsServed(t *testing.T) {
	rec := get(t, newTestApp(t), "/public/reactoid.js")

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "ReactoidContextProvider")
}

func TestStaticDirIsServed(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, os.WriteFile(filepath.Join(app.Config.StaticDir, "favicon.svg"), []byte("<svg/>"), 0o644))

	rec := get(t, app, "/favicon.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<svg/>", rec.Body.String())

	rec = get(t, app, "/public/favicon.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))
}

func TestRobotsPointsAtSitemap(t *testing.T) {
	rec := get(t, newTestApp(t), "/robots.txt")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: "+site.URL+"/sitemap.xml")
}

func TestSitemapListsSiteRoot(t *testing.T) {
	rec := get(t, newTestApp(t), "/sitemap.xml")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<loc>"+site.URL+"/</loc>")
}

func TestBlogRedirectsHome(t *testing.T) {
	rec := get(t, newTestApp(t), "/blog")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
}
