package mdblog

import (
	"time"

	"github.com/eringen/mdblog/internal/logger"
	"github.com/eringen/mdblog/markdown"
)

// DefaultFallbackPosts are probed when the manifest cannot be read.
var DefaultFallbackPosts = []string{
	"getting-started-with-web-development.md",
	"javascript-best-practices-2024.md",
	"responsive-design-techniques.md",
	"seo-optimization-guide.md",
}

// SiteConfig holds all configuration for an mdblog site.
type SiteConfig struct {
	Name        string // Site name (default "Professional Blog")
	URL         string // Canonical URL (default "https://yourdomain.com")
	Description string // Site description for RSS and meta tags
	Author      string // Fallback post author (default "Blog Author")
	Language    string // RSS language (default "en-us")

	Addr      string // Listen address (default ":3000")
	StaticDir string // User static assets (default "public")

	ContentDir      string   // Markdown directory (default "posts")
	ManifestName    string   // Manifest inside ContentDir (default "posts.json")
	OutputDir       string   // Generated sitemap/rss/thumbs (default ".")
	ImageDir        string   // Root for local featured images (default ".")
	FallbackPosts   []string // Candidates when the manifest is unavailable
	ExtraCandidates []string // Always probed in addition to the manifest

	ExcerptLength     int // List/post page excerpts (default 150)
	FeedExcerptLength int // RSS description fallback (default 200)
	FeedLimit         int // Max RSS items (default 20)
	ThumbnailWidth    int // Max thumbnail width in px (default 480)

	SessionSecret string // Theme session secret; required by Start
	CookieSecure  bool   // Set true for HTTPS
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Professional Blog"
	}
	if c.URL == "" {
		c.URL = "https://yourdomain.com"
	}
	if c.Description == "" {
		c.Description = "A professional blog featuring the latest insights on technology, development, and industry trends."
	}
	if c.Author == "" {
		c.Author = "Blog Author"
	}
	if c.Language == "" {
		c.Language = "en-us"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.ContentDir == "" {
		c.ContentDir = "posts"
	}
	if c.ManifestName == "" {
		c.ManifestName = "posts.json"
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.ImageDir == "" {
		c.ImageDir = "."
	}
	if c.FallbackPosts == nil {
		c.FallbackPosts = DefaultFallbackPosts
	}
	if c.ExcerptLength <= 0 {
		c.ExcerptLength = markdown.PageExcerptLength
	}
	if c.FeedExcerptLength <= 0 {
		c.FeedExcerptLength = markdown.FeedExcerptLength
	}
	if c.FeedLimit <= 0 {
		c.FeedLimit = 20
	}
	if c.ThumbnailWidth <= 0 {
		c.ThumbnailWidth = 480
	}
}

// WithDefaults returns a copy of c with every unset field defaulted.
func (c SiteConfig) WithDefaults() SiteConfig {
	c.setDefaults()
	return c
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger sets the logger used for requests and repository loads.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		a.log = l
	}
}

// WithSource reads posts from src instead of Config.ContentDir.
func WithSource(src Source) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithClock sets the time source for generated sitemap and feed dates.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.clock = now
	}
}

// WithThumbnailer overrides the thumbnail lookup used for list cards.
func WithThumbnailer(t *Thumbnailer) Option {
	return func(a *App) {
		a.Thumbnails = t
	}
}
