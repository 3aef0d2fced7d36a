package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrNoInput is returned when the input stream ends before a required
// answer was read.
var ErrNoInput = errors.New("input closed before all questions were answered")

// LineAsker asks questions on a plain line-oriented stream. Select
// questions are shown as numbered menus. Reads happen on a background
// goroutine so a blocked read gives way to context cancellation.
type LineAsker struct {
	reader *bufio.Reader
	w      io.Writer

	start sync.Once
	lines chan lineResult
}

type lineResult struct {
	line string
	err  error
}

var _ Asker = (*LineAsker)(nil)

// NewLineAsker creates a LineAsker reading answers from r and writing
// questions to w.
func NewLineAsker(r io.Reader, w io.Writer) *LineAsker {
	return &LineAsker{reader: bufio.NewReader(r), w: w}
}

// Ask presents each question in order.
func (a *LineAsker) Ask(ctx context.Context, questions []Question) (Answers, error) {
	answers := make(Answers, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			v   string
			err error
		)
		switch q.Kind {
		case Select:
			v, err = a.selectFromList(ctx, q)
		default:
			v, err = a.input(ctx, q)
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("%s: %w", q.Field, err)
		}
		answers[q.Field] = v
	}
	return answers, nil
}

func (a *LineAsker) input(ctx context.Context, q Question) (string, error) {
	if q.Default != "" {
		fmt.Fprintf(a.w, "? %s (%s) ", q.Message, q.Default)
	} else {
		fmt.Fprintf(a.w, "? %s ", q.Message)
	}

	line, err := a.readLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return q.Default, nil
	}
	return line, nil
}

// selectFromList presents a numbered list. The answer may be the number or
// the choice itself; an empty answer picks the first choice.
func (a *LineAsker) selectFromList(ctx context.Context, q Question) (string, error) {
	if len(q.Choices) == 0 {
		return "", fmt.Errorf("no choices available")
	}

	fmt.Fprintf(a.w, "? %s\n", q.Message)
	for i, c := range q.Choices {
		fmt.Fprintf(a.w, "  %d) %s\n", i+1, c)
	}
	fmt.Fprintf(a.w, "Enter number [1-%d]: ", len(q.Choices))

	line, err := a.readLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return q.Choices[0], nil
	}

	if num, convErr := strconv.Atoi(line); convErr == nil {
		if num < 1 || num > len(q.Choices) {
			return "", fmt.Errorf("invalid selection %q: choose 1-%d", line, len(q.Choices))
		}
		return q.Choices[num-1], nil
	}
	for _, c := range q.Choices {
		if strings.EqualFold(c, line) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid selection %q: choose one of %s", line, strings.Join(q.Choices, ", "))
}

// readLine returns the next trimmed line, or ctx.Err() if the context is
// cancelled first. A final line without a newline is accepted; EOF with
// nothing read is ErrNoInput.
func (a *LineAsker) readLine(ctx context.Context) (string, error) {
	a.start.Do(func() {
		a.lines = make(chan lineResult)
		go a.readLoop()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-a.lines:
		if !ok {
			return "", ErrNoInput
		}
		return res.line, res.err
	}
}

// readLoop feeds lines to readLine until the stream ends.
func (a *LineAsker) readLoop() {
	defer close(a.lines)
	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				if line != "" {
					a.lines <- lineResult{line: strings.TrimSpace(line)}
				}
				return
			}
			a.lines <- lineResult{err: fmt.Errorf("reading answer: %w", err)}
			return
		}
		a.lines <- lineResult{line: strings.TrimSpace(line)}
	}
}
