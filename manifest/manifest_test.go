package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := Parse([]byte(`{"posts": ["b.md", "a.md"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"b.md", "a.md"}, m.Posts)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"other": 1}`))
	assert.ErrorIs(t, err, ErrNoPosts)
}

func TestPrependAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	m := Manifest{Posts: []string{"old.md"}}
	m.Prepend("new.md")
	require.NoError(t, m.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"posts\": [\n    \"new.md\",\n    \"old.md\"\n  ]\n}", string(data))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"new.md", "old.md"}, loaded.Posts)
}

func TestMarshal_EmptyList(t *testing.T) {
	data, err := Manifest{}.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"posts\": []\n}", string(data))
}
