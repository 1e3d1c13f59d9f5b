// Package manifest reads and writes posts.json, the ordered list of post
// filenames shared by the page loader, the generators and the scaffolder.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
)

// Manifest lists post filenames in display order.
type Manifest struct {
	Posts []string `json:"posts"`
}

// ErrNoPosts is returned when a manifest has no "posts" field.
var ErrNoPosts = errors.New("manifest: missing posts field")

// Parse decodes manifest JSON.
func Parse(data []byte) (Manifest, error) {
	var raw struct {
		Posts *[]string `json:"posts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Manifest{}, fmt.Errorf("manifest: decode: %w", err)
	}
	if raw.Posts == nil {
		return Manifest{}, ErrNoPosts
	}
	return Manifest{Posts: *raw.Posts}, nil
}

// Load reads the manifest at path.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	return Parse(data)
}

// Prepend puts filename first. The rest keeps its order.
func (m *Manifest) Prepend(filename string) {
	m.Posts = slices.Insert(m.Posts, 0, filename)
}

// Marshal encodes the manifest with two-space indentation.
func (m Manifest) Marshal() ([]byte, error) {
	if m.Posts == nil {
		m.Posts = []string{}
	}
	return json.MarshalIndent(m, "", "  ")
}

// Save writes the manifest to path.
func (m Manifest) Save(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
