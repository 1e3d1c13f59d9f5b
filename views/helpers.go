package views

import (
	"net/url"

	"github.com/eringen/mdblog"
)

// CategoryClass returns the CSS classes for a category filter, with active variant.
func CategoryClass(active bool) string {
	if active {
		return "category-filter active"
	}
	return "category-filter"
}

// CategoryHref links to the list page filtered by category, keeping the
// current search term.
func CategoryHref(category, term string) string {
	q := url.Values{}
	q.Set("category", category)
	if term != "" {
		q.Set("q", term)
	}
	return "/?" + q.Encode()
}

// ThemeIcon is the toggle label: the icon of the theme it switches to.
func ThemeIcon(theme string) string {
	if theme == mdblog.ThemeDark {
		return "☀️"
	}
	return "🌙"
}

func themeOf(theme string) string {
	if theme == mdblog.ThemeDark {
		return mdblog.ThemeDark
	}
	return mdblog.ThemeLight
}

func langOf(language string) string {
	if language == "" {
		return "en"
	}
	return language
}
