package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner executes an external command in a working directory and waits for
// it to finish.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ProcessExecutionError reports a command that could not be started or that
// exited with a non-zero status.
type ProcessExecutionError struct {
	Command  string
	Args     []string
	ExitCode int    // -1 when the process never ran
	Stderr   string // trailing stderr output, if captured
	Err      error
}

// Error implements the error interface.
func (e *ProcessExecutionError) Error() string {
	cmdline := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	msg := fmt.Sprintf("%s failed", cmdline)
	if e.ExitCode >= 0 {
		msg = fmt.Sprintf("%s exited with status %d", cmdline, e.ExitCode)
	} else if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ProcessExecutionError) Unwrap() error {
	return e.Err
}

// stderrTailLimit caps how much stderr is kept for error messages.
const stderrTailLimit = 2048

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	// Stdout and Stderr receive the command's output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = (*ExecRunner)(nil)

// Run executes name with args in dir. The context kills the process when
// cancelled.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return &ProcessExecutionError{Command: name, Args: args, ExitCode: -1, Err: err}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	var stderrBuf bytes.Buffer
	cmd.Stdout = writerOrDiscard(r.Stdout)
	cmd.Stderr = io.MultiWriter(writerOrDiscard(r.Stderr), &stderrBuf)

	if err := cmd.Run(); err != nil {
		pe := &ProcessExecutionError{
			Command:  name,
			Args:     args,
			ExitCode: -1,
			Stderr:   tail(stderrBuf.String(), stderrTailLimit),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			pe.ExitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			pe.Err = ctxErr
		}
		return pe
	}
	return nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

func tail(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return "..." + s[len(s)-limit:]
}
