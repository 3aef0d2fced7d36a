// Package tasks runs an ordered list of side-effecting steps one at a time,
// printing a status line per step and stopping at the first failure.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jcli-dev/jcli/internal/ui"
)

// ErrSkipped may be returned by an Action to mark its step as skipped
// rather than failed.
var ErrSkipped = errors.New("step skipped")

// Task is one named step. Action may set Output to report progress; the
// sequencer prints it after the step finishes.
type Task struct {
	Title  string
	Action func(ctx context.Context, t *Task) error
	Output string
}

// StepError is returned when a step fails. Steps after it were not run.
type StepError struct {
	Step string
	Err  error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Run executes tasks in order. It returns nil when every step succeeded (or
// was skipped) and a *StepError for the first step that failed. A cancelled
// context stops the sequence before the next step starts.
func Run(ctx context.Context, w io.Writer, list []Task) error {
	for i := range list {
		t := &list[i]

		if err := ctx.Err(); err != nil {
			fmt.Fprintf(w, "%s %s\n", ui.Styles.Muted.Render(ui.IconSkipped), ui.Styles.Muted.Render(t.Title+" (cancelled)"))
			return &StepError{Step: t.Title, Err: err}
		}

		fmt.Fprintf(w, "%s %s\n", ui.Styles.Accent.Render(ui.IconPending), t.Title)

		err := t.Action(ctx, t)
		if t.Output != "" {
			fmt.Fprintf(w, "  %s\n", ui.Styles.Muted.Render(t.Output))
		}

		switch {
		case err == nil:
			fmt.Fprintf(w, "%s %s\n", ui.Styles.Success.Render(ui.IconOK), t.Title)
		case errors.Is(err, ErrSkipped):
			fmt.Fprintf(w, "%s %s\n", ui.Styles.Muted.Render(ui.IconSkipped), ui.Styles.Muted.Render(t.Title+" (skipped)"))
		default:
			fmt.Fprintf(w, "%s %s\n", ui.Styles.Error.Render(ui.IconFailed), t.Title)
			return &StepError{Step: t.Title, Err: err}
		}
	}
	return nil
}
