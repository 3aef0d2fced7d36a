// Package ui provides terminal styling and logging for the jcli commands.
package ui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ColorBanner  = lipgloss.Color("#F4D03F")
	ColorSuccess = lipgloss.Color("#2ECC71")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#7F8C8D")
	ColorAccent  = lipgloss.Color("#3498DB")
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Banner  lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Done    lipgloss.Style
	Fail    lipgloss.Style
}{
	Banner:  lipgloss.NewStyle().Foreground(ColorBanner),
	Bold:    lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Accent:  lipgloss.NewStyle().Foreground(ColorAccent),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Done:    lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess),
	Fail:    lipgloss.NewStyle().Bold(true).Foreground(ColorError),
}

// Status icons
const (
	IconPending = "→"
	IconOK      = "✓"
	IconFailed  = "✗"
	IconSkipped = "↷"
)

// Banner writes the product banner in yellow.
func Banner(w io.Writer, art string) {
	fmt.Fprintln(w, Styles.Banner.Render(art))
}

// Done writes a green "DONE <msg>" line.
func Done(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", Styles.Done.Render("DONE"), msg)
}

// Error writes a red "ERROR <msg>" line.
func Error(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", Styles.Fail.Render("ERROR"), msg)
}

// Warn writes a muted warning line.
func Warn(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", Styles.Muted.Render("warning:"), msg)
}

// NewLogger returns a text slog.Logger writing to w. Verbose enables debug
// records; otherwise only warnings and errors are emitted.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
