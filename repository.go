package mdblog

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/eringen/mdblog/frontmatter"
	"github.com/eringen/mdblog/internal/logger"
	"github.com/eringen/mdblog/markdown"
)

var (
	// ErrMissingTitle is returned for documents whose metadata has no title.
	ErrMissingTitle = errors.New("mdblog: missing title")
	// ErrNotFound is returned when a requested post does not exist.
	ErrNotFound = errors.New("mdblog: post not found")
)

// Repository assembles posts from a Source. It keeps no state between loads.
type Repository struct {
	source        Source
	discovery     Discovery
	excerptLength int
	log           *logger.Logger
}

// NewRepository creates a Repository reading candidates chosen by d from src.
func NewRepository(src Source, d Discovery, excerptLength int, log *logger.Logger) *Repository {
	if excerptLength <= 0 {
		excerptLength = markdown.PageExcerptLength
	}
	return &Repository{
		source:        src,
		discovery:     d,
		excerptLength: excerptLength,
		log:           logger.OrDiscard(log),
	}
}

// Load reads every candidate, skipping files that are missing or are not
// valid posts, and returns the posts newest first.
func (r *Repository) Load(ctx context.Context) ([]Post, error) {
	start := time.Now()
	names, err := r.discovery.Candidates(ctx, r.source)
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(names))
	for _, name := range names {
		data, err := r.source.ReadFile(ctx, name)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			r.log.PostSkipped(name, err.Error())
			continue
		}
		post, err := ParsePost(name, string(data), r.excerptLength)
		if err != nil {
			r.log.PostSkipped(name, err.Error())
			continue
		}
		posts = append(posts, post)
	}

	SortByDate(posts)
	r.log.PostsLoaded(len(names), len(posts), time.Since(start))
	return posts, nil
}

// ParsePost builds a Post from a markdown document. Documents without a
// metadata block or without a title return an error.
func ParsePost(filename, content string, excerptLength int) (Post, error) {
	meta, body, err := frontmatter.Split(content)
	if err != nil {
		return Post{}, fmt.Errorf("parse %s: %w", filename, err)
	}
	title := meta.String("title")
	if title == "" {
		return Post{}, fmt.Errorf("parse %s: %w", filename, ErrMissingTitle)
	}
	tags, _ := meta.List("tags")
	return Post{
		Slug:        SlugFromFilename(filename),
		Title:       title,
		Description: meta.String("description"),
		Category:    meta.String("category"),
		Author:      meta.String("author"),
		Image:       meta.String("image"),
		Date:        meta.String("date"),
		Tags:        tags,
		Content:     markdown.Convert(body),
		Excerpt:     markdown.Excerpt(body, excerptLength),
		Body:        body,
		Meta:        meta,
	}, nil
}

// SlugFromFilename strips the directory and extension from name.
func SlugFromFilename(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}

// ParseDate parses a post date string. ok is false for empty or unparseable dates.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SortByDate orders posts newest first. Posts with unparseable dates go last;
// equal dates keep their relative order.
func SortByDate(posts []Post) {
	type keyed struct {
		t  time.Time
		ok bool
	}
	keys := make(map[string]keyed, len(posts))
	key := func(p Post) keyed {
		if k, found := keys[p.Date]; found {
			return k
		}
		t, ok := ParseDate(p.Date)
		keys[p.Date] = keyed{t, ok}
		return keyed{t, ok}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := key(posts[i]), key(posts[j])
		if a.ok != b.ok {
			return a.ok
		}
		return a.t.After(b.t)
	})
}

// PostBySlug returns the post with the given slug. With duplicate slugs the
// last one wins.
func PostBySlug(posts []Post, slug string) (Post, error) {
	for i := len(posts) - 1; i >= 0; i-- {
		if posts[i].Slug == slug {
			return posts[i], nil
		}
	}
	return Post{}, ErrNotFound
}
