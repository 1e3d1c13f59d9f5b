package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestPostSkippedIsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.PostSkipped("a.md", "no title")
	assert.Empty(t, buf.String())

	l = NewWithLevel(&buf, log.DebugLevel)
	l.PostSkipped("a.md", "no title")
	assert.Contains(t, buf.String(), "post skipped")
	assert.Contains(t, buf.String(), "a.md")
}

func TestGeneratedAndWarn(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Generated("rss", "rss.xml", 3)
	l.ManifestUnavailable("posts/posts.json", errors.New("missing"))

	out := buf.String()
	assert.Contains(t, out, "generated")
	assert.Contains(t, out, "rss.xml")
	assert.Contains(t, out, "manifest unavailable")
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := New(&bytes.Buffer{})
	assert.Same(t, l, OrDiscard(l))
	OrDiscard(nil).PostsLoaded(1, 1, time.Millisecond)
}
