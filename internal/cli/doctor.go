package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcli-dev/jcli/internal/config"
	"github.com/jcli-dev/jcli/internal/project"
	"github.com/jcli-dev/jcli/internal/templates"
	"github.com/jcli-dev/jcli/internal/toolchain"
	"github.com/spf13/cobra"
)

var doctorTemplates string

// doctorProber locates and runs the checked programs.
var doctorProber toolchain.Prober = toolchain.ExecProber{}

func init() {
	doctorCmd.Flags().StringVar(&doctorTemplates, "templates", "", "Directory holding the project templates")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment jcli depends on",
	Long: `Run diagnostic checks: external programs and their versions, the template
directory, and the jcli.json of the current directory when one exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		w := cmd.OutOrStdout()

		results := toolchain.Check(cmd.Context(), doctorProber, toolchain.Defaults)
		printToolchain(w, results)

		root := templates.DefaultRoot(firstNonEmpty(doctorTemplates, config.Get(config.KeyTemplatesDir)))
		templatesErr := runTemplatesCheck(w, root)

		manifestErr := runManifestCheck(w)

		return errors.Join(toolchain.Verify(results), templatesErr, manifestErr)
	},
}

func printToolchain(w io.Writer, results []toolchain.Result) {
	fmt.Fprintln(w, "Toolchain check:")
	for _, r := range results {
		switch r.Status {
		case toolchain.StatusOK:
			fmt.Fprintf(w, "  [ OK ] %s %s (%s)\n", r.Name, r.Version, r.Path)
		case toolchain.StatusMissing:
			if r.Optional {
				fmt.Fprintf(w, "  [INFO] %s not found (optional)\n", r.Name)
			} else {
				fmt.Fprintf(w, "  [MISS] %s not found\n", r.Name)
			}
		case toolchain.StatusOutdated:
			fmt.Fprintf(w, "  [FAIL] %s %s, need >= %s\n", r.Name, r.Version, r.Minimum)
		default:
			fmt.Fprintf(w, "  [WARN] %s: %v\n", r.Name, r.Err)
		}
	}
}

func runTemplatesCheck(w io.Writer, root string) error {
	fmt.Fprintf(w, "Templates check: %s\n", root)

	r := templates.Resolver{Root: root}
	var failed error
	known := make(map[string]bool)
	for _, t := range project.ProjectTypes() {
		known[strings.ToLower(string(t))] = true
		dir, err := r.Resolve(string(t))
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", t, err)
			failed = errors.Join(failed, err)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s (%s)\n", t, dir)
	}

	// The root itself is already reported through the failures above.
	available, err := r.Available()
	if err != nil {
		return failed
	}
	for _, name := range available {
		if !known[name] {
			fmt.Fprintf(w, "  [INFO] %s: template directory without a project type\n", name)
		}
	}
	return failed
}

func runManifestCheck(w io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	path := project.ManifestPath(cwd)
	fmt.Fprintf(w, "Manifest check: %s\n", path)

	cfg, err := project.Load(cwd)
	if errors.Is(err, project.ErrNoManifest) {
		fmt.Fprintln(w, "  [INFO] No project manifest in this directory")
		return nil
	}
	if err != nil {
		var verr *project.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(verr.Issues))
			for _, issue := range verr.Issues {
				if issue.Path != "" {
					fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
				} else {
					fmt.Fprintf(w, "    - %s\n", issue.Message)
				}
			}
		} else {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
		}
		return err
	}
	fmt.Fprintf(w, "  [ OK ] Valid %s project: %s\n", cfg.ProjectType, cfg.Name)
	return nil
}
