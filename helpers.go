package mdblog

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash on
// the bare base.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) == 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PostPath is the site-relative address of a post page.
func PostPath(slug string) string {
	return "post.html?slug=" + url.QueryEscape(slug)
}

// PostURL is the absolute address of a post page.
func PostURL(base, slug string) string {
	return strings.TrimSuffix(base, "/") + "/" + PostPath(slug)
}

// FormatDate renders a post date like "January 2, 2006". Unparseable dates
// are returned unchanged.
func FormatDate(date string) string {
	t, ok := ParseDate(date)
	if !ok {
		return date
	}
	return t.Format("January 2, 2006")
}

// ShareLinks holds social sharing URLs for a page.
type ShareLinks struct {
	Twitter  string
	Facebook string
	LinkedIn string
}

// NewShareLinks builds sharing URLs for pageURL.
func NewShareLinks(pageURL, title string) ShareLinks {
	u, t := url.QueryEscape(pageURL), url.QueryEscape(title)
	return ShareLinks{
		Twitter:  "https://twitter.com/intent/tweet?url=" + u + "&text=" + t,
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + u,
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + u + "&title=" + t,
	}
}

// JoinTags joins tags with ", ".
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(post Post, cfg SiteConfig) string {
	postURL := PostURL(cfg.URL, post.Slug)
	author := post.Author
	if author == "" {
		author = cfg.Author
	}
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Summary(),
		"image":         post.Image,
		"datePublished": post.Date,
		"dateModified":  post.Date,
		"author": map[string]string{
			"@type": "Person",
			"name":  author,
		},
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if len(post.Tags) > 0 {
		data["keywords"] = JoinTags(post.Tags)
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
