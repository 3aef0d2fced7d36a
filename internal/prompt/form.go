package prompt

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// FormAsker renders the questions as an interactive terminal form.
type FormAsker struct {
	in  io.Reader
	out io.Writer
}

var _ Asker = (*FormAsker)(nil)

// NewFormAsker creates a FormAsker on the given terminal streams.
func NewFormAsker(in io.Reader, out io.Writer) *FormAsker {
	return &FormAsker{in: in, out: out}
}

// Ask builds one form field per question and runs the form.
func (a *FormAsker) Ask(ctx context.Context, questions []Question) (Answers, error) {
	values := initialValues(questions)
	fields := make([]huh.Field, 0, len(questions))

	for i, q := range questions {
		switch q.Kind {
		case Select:
			fields = append(fields, huh.NewSelect[string]().
				Title(q.Message).
				Options(huh.NewOptions(q.Choices...)...).
				Value(&values[i]))
		default:
			fields = append(fields, huh.NewInput().
				Title(q.Message).
				Placeholder(q.Default).
				Value(&values[i]))
		}
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithInput(a.in).
		WithOutput(a.out)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, context.Canceled
		}
		return nil, err
	}
	return collectAnswers(questions, values), nil
}

// initialValues pre-fills each field: the default for inputs, the first
// choice for selects.
func initialValues(questions []Question) []string {
	values := make([]string, len(questions))
	for i, q := range questions {
		switch q.Kind {
		case Select:
			if len(q.Choices) > 0 {
				values[i] = q.Choices[0]
			}
		default:
			values[i] = q.Default
		}
	}
	return values
}

// collectAnswers maps form values back to fields. A cleared input falls
// back to its default.
func collectAnswers(questions []Question, values []string) Answers {
	answers := make(Answers, len(questions))
	for i, q := range questions {
		v := strings.TrimSpace(values[i])
		if v == "" && q.Kind == Input {
			v = q.Default
		}
		answers[q.Field] = v
	}
	return answers
}

// NewAsker returns a FormAsker when both streams are terminals and a
// LineAsker otherwise (pipes, CI, tests).
func NewAsker(in io.Reader, out io.Writer) Asker {
	if isTerminal(in) && isTerminal(out) {
		return NewFormAsker(in, out)
	}
	return NewLineAsker(in, out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
