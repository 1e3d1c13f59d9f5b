// Package mdblog is a static-content blog engine: markdown posts with a small
// metadata block are listed, filtered and rendered by an Echo server, and a
// builder writes the sitemap and RSS feed for static hosting.
//
// Sites provide their own templ components via the ViewFuncs struct,
// and mdblog handles the loading, filtering, handlers and middleware.
package mdblog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/mdblog/internal/logger"
)

// Theme values stored in the session.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Chrome is the per-request state every page layout needs.
type Chrome struct {
	Site      SiteConfig
	Theme     string
	CSRFToken string
	Path      string // request URI, where the theme toggle returns to
}

// ViewFuncs holds the templ components the App calls when rendering pages.
// This lets sites own and customize all templates.
type ViewFuncs struct {
	List        func(c Chrome, page ListPage) templ.Component
	Post        func(c Chrome, page PostPage) templ.Component
	NotFound    func(c Chrome, message string) templ.Component
	ServerError func(c Chrome) templ.Component
}

// App wires the repository, handlers, middleware and views together.
// Every request reloads the posts from the content directory.
type App struct {
	Config     SiteConfig
	Echo       *echo.Echo
	Views      ViewFuncs
	Thumbnails *Thumbnailer

	source       Source
	customRoutes []func(*App)
	log          *logger.Logger
	clock        func() time.Time
	ready        bool
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	a.log = logger.OrDiscard(a.log)
	if a.source == nil {
		a.source = NewDirSource(cfg.ContentDir)
	}
	if a.Thumbnails == nil {
		a.Thumbnails = NewThumbnailer(cfg, a.log)
	}
	return a
}

// Setup validates the configuration and registers middleware and routes.
// It is called by Start; tests call it directly and serve a.Echo.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return errors.New("mdblog: SessionSecret is required")
	}
	if a.Views.List == nil || a.Views.Post == nil || a.Views.NotFound == nil || a.Views.ServerError == nil {
		return errors.New("mdblog: every ViewFuncs component is required")
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the App up and serves on Config.Addr until the server is closed.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.log.Info("serving", "addr", a.Config.Addr, "content", a.Config.ContentDir)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("mdblog: serve: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Close releases the server immediately.
func (a *App) Close() error {
	return a.Echo.Close()
}

func (a *App) setupRoutes() {
	e := a.Echo

	// The embedded stylesheet is registered ahead of the site's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/public/mdblog.css", echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS)))))

	e.Static("/public", a.Config.StaticDir)
	e.Static("/posts", a.Config.ContentDir)
	e.Static("/thumbs", filepath.Join(a.Config.OutputDir, thumbsDir))

	e.GET("/", a.handleList)
	e.GET("/index.html", a.handleList)
	e.GET("/post.html", a.handlePost)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/rss.xml", a.handleRSS)
	e.POST("/theme", a.handleTheme)
}

// Repository returns a repository over the App's source using the
// manifest-with-fallback discovery.
func (a *App) Repository() *Repository {
	return NewRepository(a.source, PageDiscovery(a.Config, a.log), a.Config.ExcerptLength, a.log)
}

func (a *App) renderOptions() RenderOptions {
	return RenderOptions{ImageFor: a.Thumbnails.ImageFor}
}

func (a *App) now() time.Time {
	if a.clock == nil {
		return time.Now()
	}
	return a.clock()
}
