package mdblog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/eringen/mdblog/internal/logger"
)

// Output file names written by the Builder.
const (
	SitemapFile = "sitemap.xml"
	RSSFile     = "rss.xml"
)

// Builder generates the static sitemap and feed from the content directory.
// The manifest is required: a missing or malformed manifest fails the build.
type Builder struct {
	Config     SiteConfig
	Repository *Repository
	Thumbnails *Thumbnailer // nil disables thumbnail generation
	Now        func() time.Time
	log        *logger.Logger
}

// NewBuilder returns a Builder reading from cfg.ContentDir.
func NewBuilder(cfg SiteConfig, log *logger.Logger) *Builder {
	cfg.setDefaults()
	log = logger.OrDiscard(log)
	return &Builder{
		Config:     cfg,
		Repository: NewRepository(NewDirSource(cfg.ContentDir), BuildDiscovery(cfg), cfg.ExcerptLength, log),
		Thumbnails: NewThumbnailer(cfg, log),
		Now:        time.Now,
		log:        log,
	}
}

// BuildResult summarizes a completed build.
type BuildResult struct {
	Posts      int
	Files      []string
	Thumbnails int
}

// Build loads the posts once and writes the sitemap, the feed and any
// thumbnails.
func (b *Builder) Build(ctx context.Context) (BuildResult, error) {
	posts, err := b.Repository.Load(ctx)
	if err != nil {
		return BuildResult{}, fmt.Errorf("load posts: %w", err)
	}
	res := BuildResult{Posts: len(posts)}

	for _, gen := range []struct {
		name  string
		write func(io.Writer, SiteConfig, []Post, time.Time) error
	}{
		{SitemapFile, WriteSitemap},
		{RSSFile, WriteRSS},
	} {
		p, err := b.writeFile(gen.name, posts, gen.write)
		if err != nil {
			return res, err
		}
		res.Files = append(res.Files, p)
	}

	if b.Thumbnails != nil {
		n, err := b.Thumbnails.GenerateAll(ctx, posts)
		if err != nil {
			return res, err
		}
		res.Thumbnails = n
	}
	return res, nil
}

// BuildSitemap writes only the sitemap and returns its path.
func (b *Builder) BuildSitemap(ctx context.Context) (string, error) {
	return b.buildOne(ctx, SitemapFile, WriteSitemap)
}

// BuildRSS writes only the feed and returns its path.
func (b *Builder) BuildRSS(ctx context.Context) (string, error) {
	return b.buildOne(ctx, RSSFile, WriteRSS)
}

func (b *Builder) buildOne(ctx context.Context, name string, write func(io.Writer, SiteConfig, []Post, time.Time) error) (string, error) {
	posts, err := b.Repository.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load posts: %w", err)
	}
	return b.writeFile(name, posts, write)
}

func (b *Builder) writeFile(name string, posts []Post, write func(io.Writer, SiteConfig, []Post, time.Time) error) (string, error) {
	var buf bytes.Buffer
	if err := write(&buf, b.Config, posts, b.now()); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	if err := os.MkdirAll(b.Config.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	out := filepath.Join(b.Config.OutputDir, name)
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	b.logger().Generated(name, out, len(posts))
	return out, nil
}

func (b *Builder) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

func (b *Builder) logger() *logger.Logger {
	return logger.OrDiscard(b.log)
}
