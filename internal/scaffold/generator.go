package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jcli-dev/jcli/internal/project"
)

//go:embed files/*.tmpl
var templateFS embed.FS

var fileTemplates = template.Must(template.ParseFS(templateFS, "files/*.tmpl"))

// Sentinel errors for generation.
var (
	ErrInvalidName = errors.New("invalid name")
)

// Result describes a completed generation.
type Result struct {
	OutputDir string
	Files     []string // written, relative to OutputDir
	Skipped   []string // already present, relative to OutputDir
}

// ComponentOptions mirrors the `component` command flags.
type ComponentOptions struct {
	Functional bool
	UseState   bool
	UseEffect  bool
}

// Generator renders files into a project described by Config.
type Generator struct {
	ProjectDir string
	Config     project.ProjectConfig
}

type componentData struct {
	Names
	UseState  bool
	UseEffect bool
	Hooks     string
}

// Component generates a UI component. For React projects it creates
// <componentDir>/<Name>/<Name>.jsx and an index.js; for Vue projects a single
// <componentDir>/<Name>.vue. Hooks imply a functional component.
func (g *Generator) Component(name string, opts ComponentOptions) (*Result, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	names := NewNames(name)
	functional := opts.Functional || opts.UseState || opts.UseEffect

	data := componentData{Names: names, UseState: opts.UseState, UseEffect: opts.UseEffect}
	base := project.Dir(g.ProjectDir, g.Config.ComponentDir)

	switch g.Config.ProjectType {
	case project.TypeVue:
		data.Hooks = hookList(opts, "ref", "onMounted")
		tmpl := "vue_options.vue.tmpl"
		if functional {
			tmpl = "vue_setup.vue.tmpl"
		}
		return render(base, []output{{tmpl, names.Name + ".vue"}}, data)
	default:
		data.Hooks = hookList(opts, "useState", "useEffect")
		tmpl := "react_class.jsx.tmpl"
		if functional {
			tmpl = "react_function.jsx.tmpl"
		}
		return render(filepath.Join(base, names.Name), []output{
			{tmpl, names.Name + ".jsx"},
			{"react_index.js.tmpl", "index.js"},
		}, data)
	}
}

// Model generates an Objection.js model at <modelDir>/<Name>.js.
func (g *Generator) Model(name string) (*Result, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	names := NewNames(name)
	return render(project.Dir(g.ProjectDir, g.Config.ModelDir), []output{
		{"model.js.tmpl", names.Name + ".js"},
	}, names)
}

// Service generates a service module at <serviceDir>/<kebab>.service.js.
func (g *Generator) Service(name string) (*Result, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	names := NewNames(name)
	return render(project.Dir(g.ProjectDir, g.Config.ServiceDir), []output{
		{"service.js.tmpl", names.Kebab + ".service.js"},
	}, names)
}

// Schema generates GraphQL type definitions and resolvers under
// <graphQLDir>/<kebab>/.
func (g *Generator) Schema(name string) (*Result, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	names := NewNames(name)
	return render(filepath.Join(project.Dir(g.ProjectDir, g.Config.GraphQLDir), names.Kebab), []output{
		{"typeDefs.graphql.tmpl", "typeDefs.graphql"},
		{"resolvers.js.tmpl", "resolvers.js"},
	}, names)
}

type output struct {
	template string
	file     string
}

func hookList(opts ComponentOptions, stateHook, effectHook string) string {
	var hooks []string
	if opts.UseState {
		hooks = append(hooks, stateHook)
	}
	if opts.UseEffect {
		hooks = append(hooks, effectHook)
	}
	return strings.Join(hooks, ", ")
}

func render(dir string, outputs []output, data any) (*Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	result := &Result{OutputDir: dir}
	for _, o := range outputs {
		var buf bytes.Buffer
		if err := fileTemplates.ExecuteTemplate(&buf, o.template, data); err != nil {
			return result, fmt.Errorf("rendering %s: %w", o.file, err)
		}

		path := filepath.Join(dir, o.file)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			result.Skipped = append(result.Skipped, o.file)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("creating %s: %w", path, err)
		}
		if _, err := f.Write(buf.Bytes()); err != nil {
			f.Close()
			return result, fmt.Errorf("writing %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return result, fmt.Errorf("writing %s: %w", path, err)
		}
		result.Files = append(result.Files, o.file)
	}
	return result, nil
}
