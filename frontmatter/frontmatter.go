// Package frontmatter splits a markdown document into its leading metadata
// block and body.
//
// A metadata block starts on the first line with "---", ends at the next
// "---" line, and holds simple "key: value" lines. Values wrapped in square
// brackets are read as comma separated lists.
package frontmatter

import (
	"errors"
	"strings"
)

// Delimiter opens and closes a metadata block.
const Delimiter = "---"

var (
	// ErrNoFrontMatter is returned when the first line is not a delimiter.
	ErrNoFrontMatter = errors.New("frontmatter: no metadata block")
	// ErrUnterminated is returned when no closing delimiter follows the opening one.
	ErrUnterminated = errors.New("frontmatter: unterminated metadata block")
)

// Value is either a scalar string or a list of strings.
type Value struct {
	Scalar string
	List   []string
	IsList bool
}

// Metadata maps keys to their parsed values.
type Metadata map[string]Value

// Has reports whether key was present in the block.
func (m Metadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// String returns the scalar value for key. List values are joined with ", ".
func (m Metadata) String(key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	if v.IsList {
		return strings.Join(v.List, ", ")
	}
	return v.Scalar
}

// List returns the list value for key. ok is false when the key is missing
// or holds a scalar.
func (m Metadata) List(key string) (list []string, ok bool) {
	v, found := m[key]
	if !found || !v.IsList {
		return nil, false
	}
	return v.List, true
}

// Parse reads the metadata block at the start of text. bodyOffset is the
// line index of the closing delimiter; the body starts on the line after it.
func Parse(text string) (Metadata, int, error) {
	lines := splitLines(text)
	if len(lines) == 0 || lines[0] != Delimiter {
		return nil, 0, ErrNoFrontMatter
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == Delimiter {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, 0, ErrUnterminated
	}

	meta := make(Metadata, end-1)
	for _, line := range lines[1:end] {
		key, raw, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		meta[key] = parseValue(strings.TrimSpace(raw))
	}
	return meta, end, nil
}

// Split parses the metadata block and returns the body text that follows it.
func Split(text string) (Metadata, string, error) {
	meta, offset, err := Parse(text)
	if err != nil {
		return nil, "", err
	}
	lines := strings.Split(text, "\n")
	return meta, strings.Join(lines[offset+1:], "\n"), nil
}

func parseValue(raw string) Value {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") && len(raw) >= 2 {
		inner := strings.TrimSpace(raw[1 : len(raw)-1])
		list := []string{}
		if inner != "" {
			for _, item := range strings.Split(inner, ",") {
				list = append(list, strings.Trim(strings.TrimSpace(item), `"'`))
			}
		}
		return Value{List: list, IsList: true}
	}
	return Value{Scalar: unquote(raw)}
}

// unquote strips one pair of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
