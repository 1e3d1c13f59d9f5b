package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/mdblog"
	"github.com/eringen/mdblog/markdown"
)

// Post renders a single post with share links and related posts.
// A page that was not found renders the not-found body instead.
func Post(c mdblog.Chrome, p mdblog.PostPage) templ.Component {
	if !p.Found {
		return NotFound(c, p.Error)
	}
	post := p.Post
	return page(c, head{meta: p.Meta, jsonLD: p.StructuredData}, func(w *writer) {
		w.raw(`<main class="container"><article class="post">` + "\n")
		w.raw(`<header class="post-header"><h1 id="post-h1">`)
		w.text(post.Title)
		w.raw(`</h1><div class="post-meta"><time id="post-date"`)
		w.attr("datetime", post.Date)
		w.raw(">")
		w.text(p.DateLabel)
		w.raw(`</time><span id="post-category" class="category">`)
		w.text(post.Category)
		w.raw(`</span></div><div id="post-tags" class="post-tags">`)
		writeTags(w, post.Tags)
		w.raw("</div></header>\n")

		w.raw(`<img id="post-featured-image" class="featured-image"`)
		if post.Image != "" {
			w.attr("src", post.Image)
			w.attr("alt", post.Title)
		} else {
			w.raw(` alt="" hidden`)
		}
		w.raw(">\n")

		w.raw(`<div id="post-content" class="post-content">`)
		w.component(markdown.Markdown(post.Body))
		w.raw("</div>\n")

		w.raw(`<div class="share-buttons"><span>Share:</span>`)
		for _, s := range []struct{ id, href, label string }{
			{"share-twitter", p.Share.Twitter, "Twitter"},
			{"share-facebook", p.Share.Facebook, "Facebook"},
			{"share-linkedin", p.Share.LinkedIn, "LinkedIn"},
		} {
			w.raw("<a")
			w.attr("id", s.id)
			w.attr("href", s.href)
			w.raw(` target="_blank" rel="noopener noreferrer">`)
			w.text(s.label)
			w.raw("</a>")
		}
		w.raw("</div>\n</article>\n")

		w.raw(`<section class="related-posts"><h2>Related Posts</h2><div id="related-posts-grid" class="related-grid">` + "\n")
		for _, card := range p.Related {
			writeCard(w, card)
		}
		w.raw("</div></section>\n</main>\n")
	})
}
