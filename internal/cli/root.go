package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jcli-dev/jcli/internal/branding"
	"github.com/jcli-dev/jcli/internal/templates"
	"github.com/jcli-dev/jcli/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds SaaS-Framework projects: it initializes a project from a
template and generates components, models, services and GraphQL schemas into it.`,
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Keep machine-readable output clean.
			if cmd.Name() == "version" {
				return
			}
			printBanner(cmd.ErrOrStderr())
		},
	}
}

func printBanner(w io.Writer) {
	ui.Banner(w, branding.Banner())
	fmt.Fprintln(w, ui.Styles.Muted.Render(branding.DisplayName()+" "+buildVersion))
}

// Execute runs the root command with build info injected via ldflags. The
// command context is cancelled on SIGINT or SIGTERM. Errors are printed here
// and returned so main can set the exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error(rootCmd.ErrOrStderr(), errorMessage(err))
		return err
	}
	return nil
}

// errorMessage turns a command error into the line shown after ERROR.
func errorMessage(err error) string {
	var notFound *templates.TemplateNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("Invalid template name %q (no template directory at %s)", notFound.Type, notFound.Path)
	}
	return err.Error()
}
