package initializer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/jcli-dev/jcli/internal/copier"
	"github.com/jcli-dev/jcli/internal/process"
	"github.com/jcli-dev/jcli/internal/project"
	"github.com/jcli-dev/jcli/internal/prompt"
	"github.com/jcli-dev/jcli/internal/tasks"
	"github.com/jcli-dev/jcli/internal/templates"
	"github.com/jcli-dev/jcli/internal/ui"
)

// Step titles, in execution order.
const (
	StepCopy    = "Copy project files"
	StepGit     = "Initialize git"
	StepInstall = "Install dependencies"
)

// ErrMissingDependency is returned when Options lacks a required collaborator.
var ErrMissingDependency = errors.New("initializer: missing dependency")

// Options configures one init run.
type Options struct {
	// WorkDir is the project directory: the manifest is written here and
	// the template is copied into it.
	WorkDir string
	// TemplateRoot holds one directory per project type.
	TemplateRoot string
	// Known carries values supplied via flags; they are never prompted for.
	Known prompt.Known
	// Defaults are offered for free-text questions.
	Defaults prompt.Defaults
	// Install runs the dependency installation step. When false the step
	// is reported as skipped.
	Install bool
	// PackageManager overrides lockfile detection when non-empty.
	PackageManager string

	Asker  prompt.Asker
	Runner process.Runner
	Out    io.Writer
	Logger *slog.Logger
}

// Result describes a completed init run.
type Result struct {
	Config       project.ProjectConfig
	TemplateDir  string
	ManifestPath string
	Copy         *copier.Result
}

// Run executes the init workflow. On failure the returned Result holds
// whatever was done before the failing phase.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.check(); err != nil {
		return nil, err
	}
	log := opts.logger()

	if opts.Defaults.Name == "" {
		opts.Defaults.Name = filepath.Base(opts.WorkDir)
	}

	answers, err := prompt.Collect(ctx, opts.Asker, opts.Defaults, projectTypeChoices(), opts.Known)
	if err != nil {
		return nil, err
	}
	log.Debug("collected answers", "answers", answers)

	resolver := templates.Resolver{Root: opts.TemplateRoot}
	templateDir, err := resolver.Resolve(answers[prompt.FieldProjectType])
	if err != nil {
		return nil, err
	}
	log.Debug("resolved template", "dir", templateDir)

	cfg := configFromAnswers(answers)
	result := &Result{Config: cfg, TemplateDir: templateDir}

	if err := project.Save(opts.WorkDir, cfg); err != nil {
		return result, fmt.Errorf("saving project manifest: %w", err)
	}
	result.ManifestPath = project.ManifestPath(opts.WorkDir)
	log.Debug("wrote manifest", "path", result.ManifestPath)

	steps := []tasks.Task{
		{
			Title: StepCopy,
			Action: func(ctx context.Context, t *tasks.Task) error {
				t.Output = "Copying files..."
				res, err := copier.Copy(ctx, templateDir, opts.WorkDir)
				result.Copy = res
				if err != nil {
					return err
				}
				for _, skipped := range res.Skipped {
					log.Debug("kept existing file", "path", skipped)
				}
				t.Output = fmt.Sprintf("Copied %d files, kept %d existing", len(res.Copied), len(res.Skipped))
				return nil
			},
		},
		{
			Title: StepGit,
			Action: func(ctx context.Context, t *tasks.Task) error {
				t.Output = "Initializing Git repository..."
				return process.InitRepository(ctx, opts.Runner, opts.WorkDir)
			},
		},
		{
			Title: StepInstall,
			Action: func(ctx context.Context, t *tasks.Task) error {
				if !opts.Install {
					t.Output = "Dependency installation disabled"
					return tasks.ErrSkipped
				}
				manager := process.DetectPackageManager(opts.WorkDir, opts.PackageManager)
				t.Output = fmt.Sprintf("Installing dependencies with %s...", manager)
				return process.InstallDependencies(ctx, opts.Runner, opts.WorkDir, manager)
			},
		},
	}

	if err := tasks.Run(ctx, opts.Out, steps); err != nil {
		return result, err
	}
	return result, nil
}

func (o *Options) check() error {
	switch {
	case o.WorkDir == "":
		return fmt.Errorf("%w: working directory", ErrMissingDependency)
	case o.Asker == nil:
		return fmt.Errorf("%w: asker", ErrMissingDependency)
	case o.Runner == nil:
		return fmt.Errorf("%w: process runner", ErrMissingDependency)
	}
	if o.Out == nil {
		o.Out = io.Discard
	}
	return nil
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return ui.Discard()
}

func projectTypeChoices() []string {
	types := project.ProjectTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func configFromAnswers(a prompt.Answers) project.ProjectConfig {
	projectType := project.ProjectType(a[prompt.FieldProjectType])
	if t, ok := project.ParseProjectType(a[prompt.FieldProjectType]); ok {
		projectType = t
	}
	return project.ProjectConfig{
		Name:         a[prompt.FieldName],
		ProjectType:  projectType,
		ComponentDir: a[prompt.FieldComponentDir],
		ModelDir:     a[prompt.FieldModelDir],
		ServiceDir:   a[prompt.FieldServiceDir],
		GraphQLDir:   a[prompt.FieldGraphQLDir],
	}
}
