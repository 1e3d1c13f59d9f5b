// Package prompt collects answers for the new-post command, either line by
// line from a reader or through an interactive terminal form.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrCancelled is returned when the operator aborts the form.
var ErrCancelled = errors.New("prompt: cancelled")

// Question is one field to ask for.
type Question struct {
	Key         string
	Label       string
	Placeholder string
	Required    bool
}

// PostQuestions are asked by the new-post command, in order.
var PostQuestions = []Question{
	{Key: "title", Label: "Post title", Placeholder: "My new post", Required: true},
	{Key: "description", Label: "Meta description"},
	{Key: "category", Label: "Category", Placeholder: "Development"},
	{Key: "tags", Label: "Tags (comma-separated)", Placeholder: "go, web"},
	{Key: "author", Label: "Author (optional)"},
	{Key: "image", Label: "Featured image URL (optional)"},
}

// Prompter asks questions and returns the trimmed answers keyed by Question.Key.
type Prompter interface {
	Ask(questions []Question) (map[string]string, error)
}

// New returns a FormPrompter when in is a terminal and a LinePrompter otherwise.
func New(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return FormPrompter{In: in, Out: out}
	}
	return LinePrompter{In: in, Out: out}
}

// LinePrompter reads one answer per line. It suits pipes and tests.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// Ask implements Prompter. Running out of input leaves the remaining
// answers empty.
func (p LinePrompter) Ask(questions []Question) (map[string]string, error) {
	r := bufio.NewReader(p.In)
	answers := make(map[string]string, len(questions))
	eof := false
	for _, q := range questions {
		fmt.Fprintf(p.Out, "%s: ", q.Label)
		if eof {
			answers[q.Key] = ""
			continue
		}
		line, err := r.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("read %s: %w", q.Key, err)
			}
			eof = true
		}
		answers[q.Key] = strings.TrimSpace(line)
	}
	if eof {
		fmt.Fprintln(p.Out)
	}
	return answers, nil
}
