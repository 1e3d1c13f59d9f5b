package mdblog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/eringen/mdblog/internal/logger"
	"github.com/eringen/mdblog/manifest"
)

// ErrManifest is returned when a required manifest cannot be read or decoded.
var ErrManifest = errors.New("mdblog: manifest unavailable")

// Source reads post files and the manifest by name.
type Source interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// DirSource reads from a file system rooted at the content directory.
type DirSource struct {
	FS fs.FS
}

// NewDirSource returns a Source over the directory dir.
func NewDirSource(dir string) DirSource {
	return DirSource{FS: os.DirFS(dir)}
}

// ReadFile implements Source.
func (s DirSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(s.FS, name)
}

// Discovery decides which filenames the repository tries to load.
type Discovery interface {
	Candidates(ctx context.Context, src Source) ([]string, error)
}

// ManifestDiscovery lists the filenames from the manifest. Any read or decode
// failure is fatal and wraps ErrManifest.
type ManifestDiscovery struct {
	Name string
}

// Candidates implements Discovery.
func (d ManifestDiscovery) Candidates(ctx context.Context, src Source) ([]string, error) {
	data, err := src.ReadFile(ctx, d.Name)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrManifest, d.Name, err)
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrManifest, d.Name, err)
	}
	return m.Posts, nil
}

// FixedDiscovery is a hard-coded candidate list.
type FixedDiscovery []string

// Candidates implements Discovery.
func (d FixedDiscovery) Candidates(context.Context, Source) ([]string, error) {
	return slices.Clone(d), nil
}

// FallbackDiscovery uses the manifest when it can be read and the fixed list
// otherwise. Extra names are appended to either result, skipping duplicates.
type FallbackDiscovery struct {
	Manifest ManifestDiscovery
	Fallback FixedDiscovery
	Extra    []string
	Log      *logger.Logger
}

// Candidates implements Discovery.
func (d FallbackDiscovery) Candidates(ctx context.Context, src Source) ([]string, error) {
	names, err := d.Manifest.Candidates(ctx, src)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.OrDiscard(d.Log).ManifestUnavailable(d.Manifest.Name, err)
		names, _ = d.Fallback.Candidates(ctx, src)
	}
	return appendUnique(names, d.Extra...), nil
}

func appendUnique(names []string, extra ...string) []string {
	seen := make(map[string]struct{}, len(names)+len(extra))
	out := make([]string, 0, len(names)+len(extra))
	for _, n := range append(names, extra...) {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// PageDiscovery is the discovery used when rendering pages: manifest first,
// then the configured fallback list.
func PageDiscovery(cfg SiteConfig, log *logger.Logger) Discovery {
	return FallbackDiscovery{
		Manifest: ManifestDiscovery{Name: cfg.ManifestName},
		Fallback: FixedDiscovery(cfg.FallbackPosts),
		Extra:    cfg.ExtraCandidates,
		Log:      log,
	}
}

// BuildDiscovery is the discovery used by the generators: the manifest is required.
func BuildDiscovery(cfg SiteConfig) Discovery {
	return ManifestDiscovery{Name: cfg.ManifestName}
}
