package mdblog

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x), A: 255})
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func newTestThumbnailer(t *testing.T) *Thumbnailer {
	t.Helper()
	return NewThumbnailer(SiteConfig{ImageDir: t.TempDir(), OutputDir: t.TempDir()}, nil)
}

func TestIsLocalImage(t *testing.T) {
	assert.True(t, IsLocalImage("images/a.png"))
	assert.True(t, IsLocalImage("/images/a.png"))
	assert.False(t, IsLocalImage(""))
	assert.False(t, IsLocalImage("https://cdn.example.com/a.png"))
	assert.False(t, IsLocalImage("HTTP://cdn.example.com/a.png"))
	assert.False(t, IsLocalImage("//cdn.example.com/a.png"))
	assert.False(t, IsLocalImage("data:image/png;base64,AAAA"))
}

func TestThumbnailer_Generate(t *testing.T) {
	th := newTestThumbnailer(t)
	writePNG(t, filepath.Join(th.ImageDir, "images", "wide.png"), 1000, 500)
	post := Post{Slug: "wide", Image: "/images/wide.png"}

	assert.Equal(t, "/images/wide.png", th.ImageFor(post), "no thumbnail yet")

	rel, err := th.Generate(post)
	require.NoError(t, err)
	assert.Equal(t, "thumbs/wide.jpg", rel)

	f, err := os.Open(filepath.Join(th.OutputDir, "thumbs", "wide.jpg"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 480, cfg.Width)
	assert.Equal(t, 240, cfg.Height)

	assert.Equal(t, "thumbs/wide.jpg", th.ImageFor(post))
}

func TestThumbnailer_SkipsNarrowAndRemote(t *testing.T) {
	th := newTestThumbnailer(t)
	writePNG(t, filepath.Join(th.ImageDir, "narrow.png"), 300, 200)

	rel, err := th.Generate(Post{Slug: "narrow", Image: "narrow.png"})
	require.NoError(t, err)
	assert.Empty(t, rel)
	assert.NoFileExists(t, filepath.Join(th.OutputDir, "thumbs", "narrow.jpg"))

	rel, err = th.Generate(Post{Slug: "remote", Image: "https://example.com/x.png"})
	require.NoError(t, err)
	assert.Empty(t, rel)

	_, err = th.Generate(Post{Slug: "missing", Image: "missing.png"})
	assert.Error(t, err)
}

func TestThumbnailer_GenerateAll(t *testing.T) {
	th := newTestThumbnailer(t)
	writePNG(t, filepath.Join(th.ImageDir, "a.png"), 800, 400)
	writePNG(t, filepath.Join(th.ImageDir, "b.png"), 100, 100)
	require.NoError(t, os.WriteFile(filepath.Join(th.ImageDir, "c.png"), []byte("not an image"), 0o644))

	n, err := th.GenerateAll(context.Background(), []Post{
		{Slug: "a", Image: "a.png"},
		{Slug: "b", Image: "b.png"},
		{Slug: "c", Image: "c.png"},
		{Slug: "d"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
