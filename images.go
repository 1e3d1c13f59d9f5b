package mdblog

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/eringen/mdblog/internal/logger"
)

const (
	jpegQuality = 80
	thumbsDir   = "thumbs"
)

// Thumbnailer writes scaled-down JPEG copies of local featured images.
type Thumbnailer struct {
	ImageDir  string // local image paths are resolved against this directory
	OutputDir string // thumbnails go to OutputDir/thumbs
	Width     int
	Log       *logger.Logger
}

// NewThumbnailer returns a Thumbnailer configured from cfg.
func NewThumbnailer(cfg SiteConfig, log *logger.Logger) *Thumbnailer {
	cfg.setDefaults()
	return &Thumbnailer{
		ImageDir:  cfg.ImageDir,
		OutputDir: cfg.OutputDir,
		Width:     cfg.ThumbnailWidth,
		Log:       logger.OrDiscard(log),
	}
}

// ThumbnailPath is the site-relative address of a post's thumbnail.
func ThumbnailPath(slug string) string {
	return path.Join(thumbsDir, slug+".jpg")
}

// IsLocalImage reports whether src refers to a file rather than a remote URL.
func IsLocalImage(src string) bool {
	if src == "" {
		return false
	}
	lower := strings.ToLower(src)
	for _, prefix := range []string{"http://", "https://", "//", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	return true
}

// Generate writes the thumbnail for p and returns its site-relative path.
// It returns "" without error when p has no local image or the image is
// already narrow enough.
func (t *Thumbnailer) Generate(p Post) (string, error) {
	if !IsLocalImage(p.Image) {
		return "", nil
	}
	src := filepath.Join(t.ImageDir, filepath.FromSlash(strings.TrimPrefix(p.Image, "/")))
	f, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	data, resized, err := resizeJPEG(f, t.Width)
	if err != nil {
		return "", fmt.Errorf("%s: %w", p.Image, err)
	}
	if !resized {
		return "", nil
	}

	rel := ThumbnailPath(p.Slug)
	dst := filepath.Join(t.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create thumbs dir: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write thumbnail: %w", err)
	}
	return rel, nil
}

// GenerateAll writes thumbnails for every post and returns how many were
// written. Individual image failures are logged and skipped.
func (t *Thumbnailer) GenerateAll(ctx context.Context, posts []Post) (int, error) {
	n := 0
	for _, p := range posts {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		rel, err := t.Generate(p)
		if err != nil {
			logger.OrDiscard(t.Log).Warn("thumbnail skipped", "slug", p.Slug, "error", err)
			continue
		}
		if rel != "" {
			n++
		}
	}
	return n, nil
}

// ImageFor returns the thumbnail path for p when one has been generated and
// the post's own image otherwise.
func (t *Thumbnailer) ImageFor(p Post) string {
	if !IsLocalImage(p.Image) {
		return p.Image
	}
	rel := ThumbnailPath(p.Slug)
	if _, err := os.Stat(filepath.Join(t.OutputDir, filepath.FromSlash(rel))); err == nil {
		return rel
	}
	return p.Image
}

// resizeJPEG decodes an image from src and, when it is wider than maxWidth,
// scales it down keeping the aspect ratio and encodes it as JPEG.
func resizeJPEG(src io.Reader, maxWidth int) ([]byte, bool, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, false, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth {
		return nil, false, nil
	}

	newH := max(1, h*maxWidth/w)
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, false, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), true, nil
}
