package prompt

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := LinePrompter{
		In:  strings.NewReader("  My Title \nShort description\nDev\ngo, web\n\n"),
		Out: &out,
	}

	answers, err := p.Ask(PostQuestions)
	require.NoError(t, err)

	assert.Equal(t, "My Title", answers["title"])
	assert.Equal(t, "Short description", answers["description"])
	assert.Equal(t, "Dev", answers["category"])
	assert.Equal(t, "go, web", answers["tags"])
	assert.Equal(t, "", answers["author"])
	assert.Equal(t, "", answers["image"])
	assert.Contains(t, out.String(), "Post title: ")
	assert.Contains(t, out.String(), "Featured image URL (optional): ")
}

func TestLinePrompter_LastLineWithoutNewline(t *testing.T) {
	p := LinePrompter{In: strings.NewReader("Only title"), Out: &bytes.Buffer{}}

	answers, err := p.Ask(PostQuestions)
	require.NoError(t, err)

	assert.Equal(t, "Only title", answers["title"])
	assert.Len(t, answers, len(PostQuestions))
}

func typeRunes(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestFormModel_FillAndSubmit(t *testing.T) {
	qs := []Question{
		{Key: "title", Label: "Title", Required: true},
		{Key: "tags", Label: "Tags"},
	}
	var m tea.Model = newFormModel(qs)

	m = typeRunes(m, "Hello")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typeRunes(m, "a,b")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	fm := m.(formModel)
	assert.True(t, fm.done)
	assert.Equal(t, map[string]string{"title": "Hello", "tags": "a,b"}, fm.answers())
}

func TestFormModel_RequiredField(t *testing.T) {
	var m tea.Model = newFormModel([]Question{{Key: "title", Label: "Title", Required: true}})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	fm := m.(formModel)
	assert.False(t, fm.done)
	assert.Contains(t, fm.View(), "Title is required")
}

func TestFormModel_Cancel(t *testing.T) {
	var m tea.Model = newFormModel(PostQuestions)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.True(t, m.(formModel).cancelled)
	assert.Empty(t, m.View())
}

func TestFormModel_TabWraps(t *testing.T) {
	var m tea.Model = newFormModel(PostQuestions)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})

	assert.Equal(t, len(PostQuestions)-1, m.(formModel).focus)
}

func TestFormModel_View(t *testing.T) {
	m := newFormModel(PostQuestions)

	view := m.View()

	assert.Contains(t, view, "New blog post")
	assert.Contains(t, view, "Meta description")
	assert.NotNil(t, m.Init())
}
