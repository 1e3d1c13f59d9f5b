package mdblog

import (
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// WriteSitemap writes a sitemaps.org urlset with the home page and one entry
// per post. Posts without a date use today's date as lastmod.
func WriteSitemap(w io.Writer, cfg SiteConfig, posts []Post, now time.Time) error {
	cfg.setDefaults()
	base := strings.TrimSuffix(cfg.URL, "/")
	today := now.Format(time.DateOnly)

	urls := []sitemapURL{
		{Loc: base + "/", LastMod: today, ChangeFreq: "weekly", Priority: "1.0"},
	}
	for _, p := range posts {
		lastmod := p.Date
		if lastmod == "" {
			lastmod = today
		}
		urls = append(urls, sitemapURL{
			Loc:        PostURL(base, p.Slug),
			LastMod:    lastmod,
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}
	return writeXML(w, sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

func (a *App) renderSitemap(c echo.Context, posts []Post) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteSitemap(c.Response(), a.Config, posts, a.now())
}
