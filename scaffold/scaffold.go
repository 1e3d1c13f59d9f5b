// Package scaffold creates new post files from the embedded template and
// registers them at the top of the manifest.
package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/eringen/mdblog/manifest"
)

// Templates contains the post template. Files use Go text/template syntax
// and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

var postTemplate = template.Must(template.ParseFS(Templates, "templates/post.md.tmpl"))

var (
	// ErrTitleRequired is returned when the post title is empty.
	ErrTitleRequired = errors.New("scaffold: title is required")
	// ErrPostExists is returned when the derived filename is already taken.
	ErrPostExists = errors.New("scaffold: post already exists")
)

var (
	reUnsafe  = regexp.MustCompile(`[^a-z0-9\s-]`)
	reSpaces  = regexp.MustCompile(`\s+`)
	reHyphens = regexp.MustCompile(`-+`)
)

// Filename derives the post filename from a title: lowercase, only letters,
// digits, whitespace and hyphens kept, whitespace runs become one hyphen and
// hyphen runs collapse.
func Filename(title string) string {
	s := strings.ToLower(title)
	s = reUnsafe.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, "-")
	s = reHyphens.ReplaceAllString(s, "-")
	return strings.TrimSpace(s) + ".md"
}

// FormatTags turns comma-separated input into the bracketed list form.
func FormatTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return "[]"
	}
	parts := strings.Split(input, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// PostInput is what the operator supplies for a new post.
type PostInput struct {
	Title       string
	Description string
	Category    string
	Tags        string // comma-separated
	Author      string
	Image       string
}

type templateData struct {
	PostInput
	Date string
}

// Result describes a created post.
type Result struct {
	Filename string
	Path     string
	Slug     string
	URL      string // site-relative post page address
}

// Scaffolder writes new posts into ContentDir.
type Scaffolder struct {
	ContentDir    string
	ManifestName  string
	DefaultAuthor string
	Now           func() time.Time
}

// Create writes the post file and prepends it to the manifest. An existing
// file is never overwritten, and the manifest is left untouched on failure.
func (s *Scaffolder) Create(in PostInput) (Result, error) {
	in = trimInput(in)
	if in.Title == "" {
		return Result{}, ErrTitleRequired
	}
	if in.Author == "" {
		in.Author = s.DefaultAuthor
	}

	manifestPath := filepath.Join(s.ContentDir, s.manifestName())
	m, err := manifest.Load(manifestPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("read manifest: %w", err)
		}
		m = manifest.Manifest{}
	}

	name := Filename(in.Title)
	if name == ".md" {
		return Result{}, fmt.Errorf("%w: %q has no filename characters", ErrTitleRequired, in.Title)
	}
	content, err := Render(in, s.now())
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(s.ContentDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create content dir: %w", err)
	}
	postPath := filepath.Join(s.ContentDir, name)
	if err := writeNew(postPath, content); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Result{}, fmt.Errorf("%w: %s", ErrPostExists, name)
		}
		return Result{}, err
	}

	m.Prepend(name)
	if err := m.Save(manifestPath); err != nil {
		return Result{}, fmt.Errorf("write manifest: %w", err)
	}

	slug := strings.TrimSuffix(name, ".md")
	return Result{
		Filename: name,
		Path:     postPath,
		Slug:     slug,
		URL:      "post.html?slug=" + slug,
	}, nil
}

// Render produces the markdown document for in, dated now.
func Render(in PostInput, now time.Time) ([]byte, error) {
	data := templateData{PostInput: in, Date: now.Format(time.DateOnly)}
	data.Tags = FormatTags(in.Tags)
	var buf bytes.Buffer
	if err := postTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func writeNew(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func trimInput(in PostInput) PostInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Tags = strings.TrimSpace(in.Tags)
	in.Author = strings.TrimSpace(in.Author)
	in.Image = strings.TrimSpace(in.Image)
	return in
}

func (s *Scaffolder) manifestName() string {
	if s.ManifestName == "" {
		return "posts.json"
	}
	return s.ManifestName
}

func (s *Scaffolder) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
