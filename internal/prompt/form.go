package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// FormPrompter shows every question at once as a bubbletea form.
type FormPrompter struct {
	In  io.Reader
	Out io.Writer
}

// Ask implements Prompter.
func (p FormPrompter) Ask(questions []Question) (map[string]string, error) {
	final, err := tea.NewProgram(newFormModel(questions), tea.WithInput(p.In), tea.WithOutput(p.Out)).Run()
	if err != nil {
		return nil, fmt.Errorf("run form: %w", err)
	}
	m, ok := final.(formModel)
	if !ok || m.cancelled {
		return nil, ErrCancelled
	}
	return m.answers(), nil
}

type formModel struct {
	questions []Question
	inputs    []textinput.Model
	focus     int
	errMsg    string
	done      bool
	cancelled bool
}

func newFormModel(questions []Question) formModel {
	inputs := make([]textinput.Model, len(questions))
	for i, q := range questions {
		ti := textinput.New()
		ti.Placeholder = q.Placeholder
		ti.CharLimit = 256
		ti.Width = 50
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}
	return formModel{questions: questions, inputs: inputs}
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		m.done = true
		return m, tea.Quit
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			q := m.questions[m.focus]
			if q.Required && strings.TrimSpace(m.inputs[m.focus].Value()) == "" {
				m.errMsg = q.Label + " is required"
				return m, nil
			}
			m.errMsg = ""
			if m.focus == len(m.inputs)-1 {
				m.done = true
				return m, tea.Quit
			}
			cmd := m.move(1)
			return m, cmd
		case tea.KeyTab, tea.KeyDown:
			cmd := m.move(1)
			return m, cmd
		case tea.KeyShiftTab, tea.KeyUp:
			cmd := m.move(-1)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// move shifts focus by delta, wrapping around.
func (m *formModel) move(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m formModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("New blog post"))
	b.WriteString("\n\n")
	for i, q := range m.questions {
		b.WriteString(labelStyle.Render(q.Label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: next/submit  tab: move  esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m formModel) answers() map[string]string {
	out := make(map[string]string, len(m.questions))
	for i, q := range m.questions {
		out[q.Key] = strings.TrimSpace(m.inputs[i].Value())
	}
	return out
}
