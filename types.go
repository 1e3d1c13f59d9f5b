package mdblog

import "github.com/eringen/mdblog/frontmatter"

// Post is a parsed markdown document ready for rendering.
type Post struct {
	Slug        string
	Title       string
	Description string
	Category    string
	Author      string
	Image       string
	Date        string
	Tags        []string // nil unless the metadata value was a bracketed list
	Content     string   // HTML
	Excerpt     string
	Body        string // raw markdown after the metadata block
	Meta        frontmatter.Metadata
}

// Summary returns the description, falling back to the excerpt.
func (p Post) Summary() string {
	if p.Description != "" {
		return p.Description
	}
	return p.Excerpt
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Image       string
	OGType      string // "website" or "article"
}
