package mdblog

import (
	"strings"
	"testing"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com/"},
		{"https://example.com/", nil, "https://example.com/"},
		{"https://example.com", []string{"rss.xml"}, "https://example.com/rss.xml"},
		{"https://example.com/blog", []string{"a", "b"}, "https://example.com/blog/a/b"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestPostURL(t *testing.T) {
	tests := []struct {
		base, slug, want string
	}{
		{"https://example.com", "hello", "https://example.com/post.html?slug=hello"},
		{"https://example.com/", "hello", "https://example.com/post.html?slug=hello"},
		{"https://example.com", "a b&c", "https://example.com/post.html?slug=a+b%26c"},
	}
	for _, tt := range tests {
		if got := PostURL(tt.base, tt.slug); got != tt.want {
			t.Errorf("PostURL(%q, %q) = %q, want %q", tt.base, tt.slug, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-02", "January 2, 2024"},
		{"2023-12-31", "December 31, 2023"},
		{"soon", "soon"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewShareLinks(t *testing.T) {
	links := NewShareLinks("https://example.com/post.html?slug=a", "A & B")
	if !strings.HasPrefix(links.Facebook, "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2F") {
		t.Errorf("unexpected facebook link %q", links.Facebook)
	}
	if !strings.HasSuffix(links.LinkedIn, "&title=A+%26+B") {
		t.Errorf("unexpected linkedin link %q", links.LinkedIn)
	}
}

func TestBlogPostingJsonLD(t *testing.T) {
	cfg := SiteConfig{}.WithDefaults()
	got := BlogPostingJsonLD(Post{Slug: "s", Title: "T", Tags: []string{"a", "b"}}, cfg)
	for _, want := range []string{`"keywords":"a, b"`, `"@id":"https://yourdomain.com/post.html?slug=s"`, `"name":"Blog Author"`} {
		if !strings.Contains(got, want) {
			t.Errorf("BlogPostingJsonLD missing %s in %s", want, got)
		}
	}
}
