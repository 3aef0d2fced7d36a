package ui

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestErrorIncludesMessage(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, "Invalid template name")

	out := buf.String()
	if !strings.Contains(out, "ERROR") || !strings.Contains(out, "Invalid template name") {
		t.Errorf("unexpected error line: %q", out)
	}
}

func TestDoneIncludesMessage(t *testing.T) {
	var buf bytes.Buffer
	Done(&buf, "Project ready")

	if !strings.Contains(buf.String(), "Project ready") {
		t.Errorf("unexpected done line: %q", buf.String())
	}
}

func TestNewLoggerLevels(t *testing.T) {
	quiet := NewLogger(&bytes.Buffer{}, false)
	if quiet.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("non-verbose logger should not emit debug records")
	}

	verbose := NewLogger(&bytes.Buffer{}, true)
	if !verbose.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose logger should emit debug records")
	}
}

func TestDiscardDropsEverything(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger should not be enabled at any level")
	}
}
