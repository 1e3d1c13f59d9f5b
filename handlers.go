package mdblog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

func (a *App) loadPosts(c echo.Context) ([]Post, error) {
	return a.Repository().Load(c.Request().Context())
}

func (a *App) handleList(c echo.Context) error {
	posts, err := a.loadPosts(c)
	if err != nil {
		return err
	}
	category := c.QueryParam("category")
	term := strings.TrimSpace(c.QueryParam("q"))
	page := BuildListPage(a.Config, posts, category, term, a.renderOptions())
	return Render(c, a.Views.List(a.chrome(c), page))
}

func (a *App) handlePost(c echo.Context) error {
	posts, err := a.loadPosts(c)
	if err != nil {
		return err
	}
	page := BuildPostPage(a.Config, posts, c.QueryParam("slug"), a.renderOptions())
	if !page.Found {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.chrome(c), page.Error))
	}
	return Render(c, a.Views.Post(a.chrome(c), page))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.loadPosts(c)
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleRSS(c echo.Context) error {
	posts, err := a.loadPosts(c)
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleTheme(c echo.Context) error {
	next := ThemeDark
	if currentTheme(c) == ThemeDark {
		next = ThemeLight
	}
	if err := setTheme(c, next); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, safeRedirect(c.FormValue("redirect")))
}

// safeRedirect only allows site-relative targets.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

func (a *App) chrome(c echo.Context) Chrome {
	return Chrome{
		Site:      a.Config,
		Theme:     currentTheme(c),
		CSRFToken: CsrfToken(c),
		Path:      c.Request().URL.RequestURI(),
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.chrome(c), "Page not found"))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.log.Error("server error", "uri", c.Request().RequestURI, "error", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.chrome(c)))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
