// Package views holds the default templ components for the mdblog pages.
// Sites can replace any of them through mdblog.ViewFuncs.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/mdblog"
)

// Funcs returns the default page components.
func Funcs() mdblog.ViewFuncs {
	return mdblog.ViewFuncs{
		List:        List,
		Post:        Post,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// writer accumulates the first write error so page bodies read top to bottom.
type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) attr(name, value string) {
	w.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (w *writer) component(c templ.Component) {
	if w.err != nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}

// meta writes a <meta> tag with an id so the head stays addressable.
func (w *writer) meta(id, key, name, content string) {
	w.raw("<meta")
	w.attr("id", id)
	w.attr(key, name)
	w.attr("content", content)
	w.raw(">")
}

type head struct {
	meta   mdblog.PageMeta
	jsonLD string
}

func page(c mdblog.Chrome, h head, body func(w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{ctx: ctx, w: out}
		w.raw("<!DOCTYPE html>\n<html")
		w.attr("lang", langOf(c.Site.Language))
		w.attr("data-theme", themeOf(c.Theme))
		w.raw(">\n<head>\n<meta charset=\"utf-8\">\n")
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
		writeHead(w, c, h)
		w.raw("</head>\n<body>\n")
		writeHeader(w, c)
		body(w)
		writeFooter(w, c)
		w.raw("</body>\n</html>\n")
		return w.err
	})
}

func writeHead(w *writer, c mdblog.Chrome, h head) {
	m := h.meta
	w.raw(`<title id="post-title">`)
	w.text(m.Title)
	w.raw("</title>\n")
	w.meta("post-description", "name", "description", m.Description)
	w.raw("\n<link rel=\"canonical\" id=\"post-canonical\"")
	w.attr("href", m.URL)
	w.raw(">\n")

	w.meta("og-type", "property", "og:type", m.OGType)
	w.meta("og-url", "property", "og:url", m.URL)
	w.meta("og-title", "property", "og:title", m.Title)
	w.meta("og-description", "property", "og:description", m.Description)
	w.meta("og-image", "property", "og:image", m.Image)
	w.raw("\n")
	w.meta("twitter-card", "name", "twitter:card", "summary_large_image")
	w.meta("twitter-url", "name", "twitter:url", m.URL)
	w.meta("twitter-title", "name", "twitter:title", m.Title)
	w.meta("twitter-description", "name", "twitter:description", m.Description)
	w.meta("twitter-image", "name", "twitter:image", m.Image)
	w.raw("\n")

	w.raw(`<link rel="alternate" type="application/rss+xml"`)
	w.attr("title", c.Site.Name)
	w.raw(` href="/rss.xml">` + "\n")
	w.raw(`<link rel="stylesheet" href="/public/mdblog.css">` + "\n")
	w.raw(`<link rel="stylesheet" href="/public/css/style.css">` + "\n")
	if h.jsonLD != "" {
		// json.Marshal escapes <, > and &, so the payload cannot close the tag.
		w.raw(`<script type="application/ld+json" id="structured-data">`)
		w.raw(h.jsonLD)
		w.raw("</script>\n")
	}
}

func writeHeader(w *writer, c mdblog.Chrome) {
	w.raw(`<header class="site-header"><nav class="container">`)
	w.raw(`<a class="logo" href="/">`)
	w.text(c.Site.Name)
	w.raw(`</a>`)
	w.raw(`<form class="theme-form" method="post" action="/theme">`)
	w.raw(`<input type="hidden" name="_csrf"`)
	w.attr("value", c.CSRFToken)
	w.raw(`><input type="hidden" name="redirect"`)
	w.attr("value", c.Path)
	w.raw(`><button type="submit" id="theme-toggle" aria-label="Toggle theme">`)
	w.text(ThemeIcon(c.Theme))
	w.raw("</button></form></nav></header>\n")
}

func writeFooter(w *writer, c mdblog.Chrome) {
	w.raw(`<footer class="site-footer"><div class="container"><p>`)
	w.text(c.Site.Name)
	w.raw(` &middot; <a href="/rss.xml">RSS</a> &middot; <a href="/sitemap.xml">Sitemap</a></p></div></footer>` + "\n")
}
