package cli

import (
	"fmt"
	"os"

	"github.com/jcli-dev/jcli/internal/config"
	"github.com/jcli-dev/jcli/internal/initializer"
	"github.com/jcli-dev/jcli/internal/process"
	"github.com/jcli-dev/jcli/internal/prompt"
	"github.com/jcli-dev/jcli/internal/templates"
	"github.com/jcli-dev/jcli/internal/ui"
	"github.com/spf13/cobra"
)

var (
	initVerbose      bool
	initInstall      bool
	initName         string
	initType         string
	initComponentDir string
	initModelDir     string
	initServiceDir   string
	initGraphQLDir   string
	initTemplates    string
)

func init() {
	initCmd.Flags().BoolVarP(&initVerbose, "verbose", "v", false, "Show debug logs and external command output")
	initCmd.Flags().BoolVarP(&initInstall, "install", "i", true, "Install dependencies after copying the template")
	initCmd.Flags().StringVarP(&initName, "name", "n", "", "Project name")
	initCmd.Flags().StringVarP(&initType, "type", "t", "", "Project type (React or Vue)")
	initCmd.Flags().StringVarP(&initComponentDir, "componentDir", "c", "", "Directory to store components")
	initCmd.Flags().StringVarP(&initModelDir, "modelDir", "m", "", "Directory to store objection models")
	initCmd.Flags().StringVarP(&initServiceDir, "serviceDir", "s", "", "Directory to store services")
	initCmd.Flags().StringVarP(&initGraphQLDir, "graphQLDir", "g", "", "Directory to store graphQL schemas")
	initCmd.Flags().StringVar(&initTemplates, "templates", "", "Directory holding the project templates")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Initialize a project in the current directory",
	Long: `Initialize a project in the current directory.

Asks for any setting not given as a flag, writes jcli.json, copies the
project template (existing files are kept), runs git init and installs
dependencies.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		config.Load()

		out := cmd.OutOrStdout()
		runner := &process.ExecRunner{}
		if initVerbose {
			runner.Stdout = out
			runner.Stderr = cmd.ErrOrStderr()
		}

		dirs := config.DefaultDirs()
		opts := initializer.Options{
			WorkDir:      cwd,
			TemplateRoot: templates.DefaultRoot(firstNonEmpty(initTemplates, config.Get(config.KeyTemplatesDir))),
			Known: prompt.Known{
				prompt.FieldName:         initName,
				prompt.FieldProjectType:  initType,
				prompt.FieldComponentDir: initComponentDir,
				prompt.FieldModelDir:     initModelDir,
				prompt.FieldServiceDir:   initServiceDir,
				prompt.FieldGraphQLDir:   initGraphQLDir,
			},
			Defaults: prompt.Defaults{
				ComponentDir: dirs.ComponentDir,
				ModelDir:     dirs.ModelDir,
				ServiceDir:   dirs.ServiceDir,
				GraphQLDir:   dirs.GraphQLDir,
			},
			Install:        initInstall,
			PackageManager: config.Get(config.KeyPackageManager),
			Asker:          prompt.NewAsker(cmd.InOrStdin(), out),
			Runner:         runner,
			Out:            out,
			Logger:         ui.NewLogger(cmd.ErrOrStderr(), initVerbose),
		}

		result, err := initializer.Run(cmd.Context(), opts)
		if err != nil {
			return err
		}

		ui.Done(out, fmt.Sprintf("Project %s ready (%s)", result.Config.Name, result.ManifestPath))
		return nil
	},
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
