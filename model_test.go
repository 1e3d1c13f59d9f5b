package mdblog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListPage(t *testing.T) {
	cfg := SiteConfig{}.WithDefaults()
	posts := append(loadFixture(t), Post{Slug: "plain", Title: "Plain"})

	page := BuildListPage(cfg, posts, "", "", RenderOptions{})

	assert.Equal(t, AllCategories, page.Category)
	assert.False(t, page.NoResults)
	require.Len(t, page.Cards, 4)
	assert.Equal(t, Card{
		Slug:      "beta",
		Title:     "Beta",
		URL:       "post.html?slug=beta",
		Date:      "2024-03-05",
		DateLabel: "March 5, 2024",
		Category:  "Design",
		Excerpt:   "Beta body",
		Tags:      []string{"css", "layout"},
	}, page.Cards[0])
	assert.Equal(t, "Uncategorized", page.Cards[3].Category)

	require.Len(t, page.Categories, 3)
	assert.Equal(t, CategoryButton{Name: "all", Label: "All Posts", Active: true}, page.Categories[0])
	assert.False(t, page.Categories[1].Active)

	assert.Equal(t, "https://yourdomain.com/", page.Meta.URL)
	assert.Equal(t, "website", page.Meta.OGType)
	assert.Contains(t, page.JsonLD, `"@type":"WebSite"`)
}

func TestBuildListPage_FilterAndNoResults(t *testing.T) {
	cfg := SiteConfig{}.WithDefaults()
	posts := loadFixture(t)

	page := BuildListPage(cfg, posts, "Design", "", RenderOptions{})
	assert.Equal(t, []string{"beta"}, cardSlugs(page.Cards))
	assert.True(t, page.Categories[1].Active)
	assert.Len(t, page.Categories, 3, "categories come from every post")

	page = BuildListPage(cfg, posts, AllCategories, "nothing matches", RenderOptions{})
	assert.True(t, page.NoResults)
	assert.Empty(t, page.Cards)
	assert.Equal(t, "nothing matches", page.Term)
}

func TestBuildListPage_ImageFor(t *testing.T) {
	cfg := SiteConfig{}.WithDefaults()
	opts := RenderOptions{ImageFor: func(p Post) string { return "thumbs/" + p.Slug + ".jpg" }}

	page := BuildListPage(cfg, loadFixture(t), "", "", opts)

	assert.Equal(t, "thumbs/alpha.jpg", page.Cards[2].Image)
}

func TestBuildPostPage(t *testing.T) {
	cfg := SiteConfig{}.WithDefaults()
	posts := loadFixture(t)

	page := BuildPostPage(cfg, posts, "alpha", RenderOptions{})

	require.True(t, page.Found)
	assert.Equal(t, "Alpha Post", page.Post.Title)
	assert.Equal(t, "January 10, 2024", page.DateLabel)
	assert.Equal(t, PageMeta{
		Title:       "Alpha Post",
		Description: "First steps with Go",
		URL:         "https://yourdomain.com/post.html?slug=alpha",
		Image:       "images/alpha.png",
		OGType:      "article",
	}, page.Meta)
	assert.Equal(t, []string{"gamma", "beta"}, cardSlugs(page.Related))
	assert.Contains(t, page.StructuredData, `"headline":"Alpha Post"`)
	assert.Contains(t, page.StructuredData, `"name":"Ann"`)
	assert.Equal(t,
		"https://twitter.com/intent/tweet?url=https%3A%2F%2Fyourdomain.com%2Fpost.html%3Fslug%3Dalpha&text=Alpha+Post",
		page.Share.Twitter)
}

func TestBuildPostPage_DescriptionFallsBackToExcerpt(t *testing.T) {
	cfg := SiteConfig{}.WithDefaults()

	page := BuildPostPage(cfg, loadFixture(t), "gamma", RenderOptions{})

	require.True(t, page.Found)
	assert.Equal(t, "Gamma body text", page.Meta.Description)
	assert.Contains(t, page.StructuredData, `"name":"Blog Author"`)
}

func TestBuildPostPage_NotFound(t *testing.T) {
	cfg := SiteConfig{}.WithDefaults()
	posts := loadFixture(t)

	for _, slug := range []string{"", "nope"} {
		page := BuildPostPage(cfg, posts, slug, RenderOptions{})
		assert.False(t, page.Found, slug)
		assert.Equal(t, "Post not found", page.Error, slug)
	}
}

func cardSlugs(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Slug)
	}
	return out
}
