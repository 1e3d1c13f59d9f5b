package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/mdblog"
)

// NotFound renders the 404 page.
func NotFound(c mdblog.Chrome, message string) templ.Component {
	if message == "" {
		message = "Page not found"
	}
	return errorPage(c, message, "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError(c mdblog.Chrome) templ.Component {
	return errorPage(c, "Something went wrong", "Please try again later.")
}

func errorPage(c mdblog.Chrome, title, detail string) templ.Component {
	meta := mdblog.PageMeta{Title: title, Description: detail, OGType: "website"}
	return page(c, head{meta: meta}, func(w *writer) {
		w.raw(`<main class="container"><div class="error-message"><h1>`)
		w.text(title)
		w.raw("</h1><p>")
		w.text(detail)
		w.raw(`</p><a href="/">Back to blog</a></div></main>` + "\n")
	})
}
