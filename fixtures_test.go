package mdblog

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)

func file(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

// siteFS has three valid posts, two invalid ones and a manifest entry with
// no file behind it.
func siteFS() fstest.MapFS {
	return fstest.MapFS{
		"posts.json": file(`{"posts": ["alpha.md", "beta.md", "gamma.md", "broken.md", "notitle.md", "missing.md"]}`),
		"alpha.md": file("---\ntitle: Alpha Post\ndescription: First steps with Go\ndate: 2024-01-10\n" +
			"category: Development\ntags: [go, testing]\nauthor: Ann\nimage: images/alpha.png\n---\n# Alpha\n\nHello **world**."),
		"beta.md":    file("---\ntitle: Beta\ndescription: CSS layouts\ndate: 2024-03-05\ncategory: Design\ntags: [css, layout]\n---\nBeta body"),
		"gamma.md":   file("---\ntitle: Gamma\ndate: 2024-02-01\ncategory: Development\ntags: [go]\n---\nGamma body text"),
		"broken.md":  file("no metadata block here"),
		"notitle.md": file("---\ndate: 2024-01-01\n---\nbody"),
	}
}

func loadFixture(t *testing.T) []Post {
	t.Helper()
	cfg := SiteConfig{}.WithDefaults()
	repo := NewRepository(DirSource{FS: siteFS()}, BuildDiscovery(cfg), cfg.ExcerptLength, nil)
	posts, err := repo.Load(context.Background())
	require.NoError(t, err)
	return posts
}

func slugs(posts []Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}
