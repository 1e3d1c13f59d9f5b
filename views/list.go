package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/mdblog"
)

// List renders the post list with its search box and category filters.
func List(c mdblog.Chrome, p mdblog.ListPage) templ.Component {
	return page(c, head{meta: p.Meta, jsonLD: p.JsonLD}, func(w *writer) {
		w.raw(`<main class="container">` + "\n")
		w.raw(`<section class="hero"><h1>`)
		w.text(c.Site.Name)
		w.raw(`</h1><p>`)
		w.text(c.Site.Description)
		w.raw("</p></section>\n")

		w.raw(`<section class="blog-controls">`)
		w.raw(`<form class="search-form" method="get" action="/">`)
		w.raw(`<input type="hidden" name="category"`)
		w.attr("value", p.Category)
		w.raw(`><input type="search" id="search-input" name="q" placeholder="Search posts..."`)
		w.attr("value", p.Term)
		w.raw(`><button type="submit" id="search-btn">Search</button></form>`)
		w.raw(`<div id="category-filters" class="category-filters">`)
		for _, b := range p.Categories {
			w.raw("<a")
			w.attr("class", CategoryClass(b.Active))
			w.attr("data-category", b.Name)
			w.attr("href", CategoryHref(b.Name, p.Term))
			w.raw(">")
			w.text(b.Label)
			w.raw("</a>")
		}
		w.raw("</div></section>\n")

		w.raw(`<div id="blog-posts" class="blog-grid">` + "\n")
		for _, card := range p.Cards {
			writeCard(w, card)
		}
		w.raw("</div>\n")
		w.raw(`<div id="no-results" class="no-results"`)
		if !p.NoResults {
			w.raw(" hidden")
		}
		w.raw("><p>No posts found matching your criteria.</p></div>\n")
		w.raw("</main>\n")
	})
}

func writeCard(w *writer, c mdblog.Card) {
	w.raw(`<article class="blog-card">`)
	if c.Image != "" {
		w.raw("<img")
		w.attr("src", c.Image)
		w.attr("alt", c.Title)
		w.raw(` loading="lazy">`)
	}
	w.raw(`<div class="blog-card-content"><h3><a`)
	w.attr("href", c.URL)
	w.raw(">")
	w.text(c.Title)
	w.raw(`</a></h3><div class="blog-card-meta"><time`)
	w.attr("datetime", c.Date)
	w.raw(">")
	w.text(c.DateLabel)
	w.raw("</time><span>")
	w.text(c.Category)
	w.raw("</span></div><p>")
	w.text(c.Excerpt)
	w.raw("</p>")
	if len(c.Tags) > 0 {
		w.raw(`<div class="blog-tags">`)
		writeTags(w, c.Tags)
		w.raw("</div>")
	}
	w.raw("</div></article>\n")
}

func writeTags(w *writer, tags []string) {
	for _, t := range tags {
		w.raw(`<span class="tag">`)
		w.text(t)
		w.raw("</span>")
	}
}
