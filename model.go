package mdblog

// Card is a post summary on the list page or in the related posts grid.
type Card struct {
	Slug      string
	Title     string
	URL       string
	Image     string
	Date      string
	DateLabel string
	Category  string // "Uncategorized" when empty
	Excerpt   string
	Tags      []string
}

// CategoryButton is one entry of the category filter bar.
type CategoryButton struct {
	Name   string
	Label  string
	Active bool
}

// ListPage is everything the list page template needs.
type ListPage struct {
	Meta       PageMeta
	JsonLD     string
	Cards      []Card
	Categories []CategoryButton
	Category   string
	Term       string
	NoResults  bool
}

// PostPage is everything the single-post template needs.
type PostPage struct {
	Found          bool
	Error          string
	Post           Post
	DateLabel      string
	Meta           PageMeta
	StructuredData string
	Share          ShareLinks
	Related        []Card
}

// RenderOptions adjusts how posts are projected into cards.
type RenderOptions struct {
	// ImageFor picks the card image; nil uses Post.Image.
	ImageFor func(Post) string
	// RelatedLimit caps the related posts (default 3).
	RelatedLimit int
}

// BuildListPage filters posts by category and term and projects them into
// the list page model. Categories are always taken from the full collection.
func BuildListPage(cfg SiteConfig, posts []Post, category, term string, opts RenderOptions) ListPage {
	if category == "" {
		category = AllCategories
	}
	filtered := FilterPosts(posts, category, term)

	var buttons []CategoryButton
	for _, c := range Categories(posts) {
		label := c
		if c == AllCategories {
			label = "All Posts"
		}
		buttons = append(buttons, CategoryButton{Name: c, Label: label, Active: c == category})
	}

	cards := make([]Card, 0, len(filtered))
	for _, p := range filtered {
		cards = append(cards, newCard(p, opts))
	}

	return ListPage{
		Meta: PageMeta{
			Title:       cfg.Name,
			Description: cfg.Description,
			URL:         BuildURL(cfg.URL),
			OGType:      "website",
		},
		JsonLD:     WebsiteJsonLD(cfg),
		Cards:      cards,
		Categories: buttons,
		Category:   category,
		Term:       term,
		NoResults:  len(cards) == 0,
	}
}

// BuildPostPage selects the post with slug and projects it, with related
// posts, into the single-post model.
func BuildPostPage(cfg SiteConfig, posts []Post, slug string, opts RenderOptions) PostPage {
	if slug == "" {
		return PostPage{Error: "Post not found"}
	}
	post, err := PostBySlug(posts, slug)
	if err != nil {
		return PostPage{Error: "Post not found"}
	}

	limit := opts.RelatedLimit
	if limit <= 0 {
		limit = 3
	}
	var related []Card
	for _, p := range RelatedPosts(post, posts, limit) {
		related = append(related, newCard(p, opts))
	}

	pageURL := PostURL(cfg.URL, post.Slug)
	return PostPage{
		Found:     true,
		Post:      post,
		DateLabel: FormatDate(post.Date),
		Meta: PageMeta{
			Title:       post.Title,
			Description: post.Summary(),
			URL:         pageURL,
			Image:       post.Image,
			OGType:      "article",
		},
		StructuredData: BlogPostingJsonLD(post, cfg),
		Share:          NewShareLinks(pageURL, post.Title),
		Related:        related,
	}
}

func newCard(p Post, opts RenderOptions) Card {
	image := p.Image
	if opts.ImageFor != nil {
		image = opts.ImageFor(p)
	}
	category := p.Category
	if category == "" {
		category = "Uncategorized"
	}
	return Card{
		Slug:      p.Slug,
		Title:     p.Title,
		URL:       PostPath(p.Slug),
		Image:     image,
		Date:      p.Date,
		DateLabel: FormatDate(p.Date),
		Category:  category,
		Excerpt:   p.Excerpt,
		Tags:      p.Tags,
	}
}
