package mdblog

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`a & b < c > "d" 'e'`, "a &amp; b &lt; c &gt; &quot;d&quot; &#39;e&#39;"},
		{"&amp;", "&amp;amp;"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeXML(tt.in), tt.in)
	}
}

func renderRSS(t *testing.T, cfg SiteConfig, posts []Post) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteRSS(&buf, cfg, posts, fixedNow))
	assertWellFormed(t, buf.String())
	return buf.String()
}

func assertWellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		require.NoError(t, err)
	}
}

func TestWriteRSS(t *testing.T) {
	out := renderRSS(t, SiteConfig{}, loadFixture(t))

	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, out, "<title>Professional Blog</title>")
	assert.Contains(t, out, "<link>https://yourdomain.com/</link>")
	assert.Contains(t, out, `<atom:link href="https://yourdomain.com/rss.xml" rel="self" type="application/rss+xml">`)
	assert.Contains(t, out, "<language>en-us</language>")
	assert.Contains(t, out, "<lastBuildDate>Mon, 06 May 2024 12:00:00 GMT</lastBuildDate>")

	assert.Contains(t, out, "<link>https://yourdomain.com/post.html?slug=alpha</link>")
	assert.Contains(t, out, `<guid isPermaLink="true">https://yourdomain.com/post.html?slug=alpha</guid>`)
	assert.Contains(t, out, "<pubDate>Wed, 10 Jan 2024 00:00:00 GMT</pubDate>")
	assert.Contains(t, out, "<author>Ann</author>")
	assert.Contains(t, out, "<category>Development</category>")
	// gamma has neither description nor author
	assert.Contains(t, out, "<description>Gamma body text</description>")
	assert.Contains(t, out, "<author>Blog Author</author>")

	assert.Less(t, strings.Index(out, "slug=beta"), strings.Index(out, "slug=gamma"))
	assert.Less(t, strings.Index(out, "slug=gamma"), strings.Index(out, "slug=alpha"))
}

func TestWriteRSS_EscapesOnce(t *testing.T) {
	posts := []Post{{
		Slug:        "qa",
		Title:       `Q&A: "Tips" <for> 'you'`,
		Description: "Fish & Chips",
		Category:    "R&D",
		Date:        "2024-01-01",
	}}

	out := renderRSS(t, SiteConfig{Name: "Tom & Jerry"}, posts)

	assert.Contains(t, out, "<title>Q&amp;A: &quot;Tips&quot; &lt;for&gt; &#39;you&#39;</title>")
	assert.Contains(t, out, "<description>Fish &amp; Chips</description>")
	assert.Contains(t, out, "<category>R&amp;D</category>")
	assert.Contains(t, out, "<title>Tom &amp; Jerry</title>")
	assert.NotContains(t, out, "&amp;amp;")
}

func TestWriteRSS_OptionalElements(t *testing.T) {
	posts := []Post{{Slug: "x", Title: "X", Date: "whenever", Body: strings.Repeat("y", 250)}}

	out := renderRSS(t, SiteConfig{}, posts)

	assert.NotContains(t, out, "<pubDate>")
	assert.NotContains(t, out, "<category>")
	assert.Contains(t, out, "<description>"+strings.Repeat("y", 200)+"...</description>")
}

func TestWriteRSS_Limit(t *testing.T) {
	var posts []Post
	for i := 0; i < 25; i++ {
		posts = append(posts, Post{Slug: fmt.Sprintf("p%d", i), Title: "P"})
	}

	out := renderRSS(t, SiteConfig{}, posts)
	assert.Equal(t, 20, strings.Count(out, "<item>"))

	out = renderRSS(t, SiteConfig{FeedLimit: 5}, posts)
	assert.Equal(t, 5, strings.Count(out, "<item>"))
}

func TestWriteRSS_Empty(t *testing.T) {
	out := renderRSS(t, SiteConfig{}, nil)
	assert.NotContains(t, out, "<item>")
	assert.Contains(t, out, "<generator>mdblog</generator>")
}
