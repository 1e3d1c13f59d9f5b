package mdblog

import (
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/mdblog/markdown"
)

const atomNS = "http://www.w3.org/2005/Atom"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeXML replaces the five XML special characters with entities.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// escaped is character data that has already been passed through EscapeXML.
type escaped struct {
	Text string `xml:",innerxml"`
}

func esc(s string) escaped { return escaped{Text: EscapeXML(s)} }

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         escaped   `xml:"title"`
	Description   escaped   `xml:"description"`
	Link          escaped   `xml:"link"`
	AtomLink      atomLink  `xml:"atom:link"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Generator     string    `xml:"generator"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       escaped  `xml:"title"`
	Description escaped  `xml:"description"`
	Link        escaped  `xml:"link"`
	GUID        rssGUID  `xml:"guid"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Author      escaped  `xml:"author"`
	Category    *escaped `xml:"category,omitempty"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Text        string `xml:",innerxml"`
}

// WriteRSS writes an RSS 2.0 feed of at most cfg.FeedLimit posts to w.
// posts are expected newest first.
func WriteRSS(w io.Writer, cfg SiteConfig, posts []Post, now time.Time) error {
	cfg.setDefaults()
	base := strings.TrimSuffix(cfg.URL, "/")

	if len(posts) > cfg.FeedLimit {
		posts = posts[:cfg.FeedLimit]
	}
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := PostURL(base, p.Slug)
		description := p.Description
		if description == "" {
			description = markdown.Excerpt(p.Body, cfg.FeedExcerptLength)
		}
		author := p.Author
		if author == "" {
			author = cfg.Author
		}
		item := rssItem{
			Title:       esc(p.Title),
			Description: esc(description),
			Link:        esc(postURL),
			GUID:        rssGUID{IsPermaLink: "true", Text: EscapeXML(postURL)},
			Author:      esc(author),
		}
		if t, ok := ParseDate(p.Date); ok {
			item.PubDate = t.UTC().Format(http.TimeFormat)
		}
		if p.Category != "" {
			c := esc(p.Category)
			item.Category = &c
		}
		items = append(items, item)
	}

	feed := rssXML{
		Version: "2.0",
		AtomNS:  atomNS,
		Channel: rssChannel{
			Title:       esc(cfg.Name),
			Description: esc(cfg.Description),
			Link:        esc(base + "/"),
			AtomLink: atomLink{
				Href: base + "/rss.xml",
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Language:      cfg.Language,
			LastBuildDate: now.UTC().Format(http.TimeFormat),
			Generator:     "mdblog",
			Items:         items,
		},
	}
	return writeXML(w, feed)
}

func writeXML(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (a *App) renderRSS(c echo.Context, posts []Post) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteRSS(c.Response(), a.Config, posts, a.now())
}
