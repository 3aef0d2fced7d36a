package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jcli-dev/jcli/internal/project"
	"github.com/jcli-dev/jcli/internal/scaffold"
	"github.com/jcli-dev/jcli/internal/ui"
)

// loadGenerator reads jcli.json from the current directory.
func loadGenerator() (*scaffold.Generator, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := project.Load(cwd)
	if err != nil {
		return nil, err
	}
	return &scaffold.Generator{ProjectDir: cwd, Config: cfg}, nil
}

// reportGenerated prints created and skipped files relative to the project.
func reportGenerated(w io.Writer, g *scaffold.Generator, kind string, res *scaffold.Result) {
	rel := func(file string) string {
		p := filepath.Join(res.OutputDir, file)
		if r, err := filepath.Rel(g.ProjectDir, p); err == nil {
			return r
		}
		return p
	}

	for _, f := range res.Files {
		fmt.Fprintf(w, "  %s %s\n", ui.Styles.Success.Render(ui.IconOK), rel(f))
	}
	for _, f := range res.Skipped {
		ui.Warn(w, fmt.Sprintf("%s already exists, not overwritten", rel(f)))
	}

	if len(res.Files) == 0 {
		ui.Done(w, fmt.Sprintf("No new %s files written", kind))
		return
	}
	ui.Done(w, fmt.Sprintf("Generated %s", kind))
}
