package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jcli-dev/jcli/internal/project"
	"github.com/jcli-dev/jcli/internal/templates"
)

// executeCommand runs the root command with args and returns stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// inProject chdirs into a temp dir holding a valid jcli.json.
func inProject(t *testing.T, typ project.ProjectType) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	cfg := project.ProjectConfig{
		Name:         "demo",
		ProjectType:  typ,
		ComponentDir: "/src/components",
		ModelDir:     "/src/models",
		ServiceDir:   "/src/services",
		GraphQLDir:   "/src/graphql",
	}
	if err := project.Save(dir, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return dir
}

func TestAliases(t *testing.T) {
	tests := map[string]string{
		"i": "init",
		"c": "component",
		"m": "model",
		"s": "service",
		"g": "schema",
	}
	for alias, name := range tests {
		cmd, _, err := rootCmd.Find([]string{alias})
		if err != nil {
			t.Errorf("Find(%q): %v", alias, err)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("alias %q resolved to %q, want %q", alias, cmd.Name(), name)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	_, err := executeCommand(t, "frobnicate")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("error = %q, want unknown command", err)
	}
}

func TestVersionFlag(t *testing.T) {
	t.Cleanup(func() { _ = rootCmd.Flags().Set("version", "false") })

	out, err := executeCommand(t, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, buildVersion) {
		t.Errorf("output %q does not contain version %q", out, buildVersion)
	}
}

func TestVersionShort(t *testing.T) {
	versionShort, versionJSON = false, false
	t.Cleanup(func() { versionShort = false })

	out, err := executeCommand(t, "version", "--short")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != buildVersion {
		t.Errorf("output = %q, want %q", out, buildVersion)
	}
}

func TestErrorMessage(t *testing.T) {
	err := &templates.TemplateNotFoundError{Type: "Angular", Path: "/t/angular", Err: os.ErrNotExist}
	got := errorMessage(errors.Join(err))
	if !strings.HasPrefix(got, "Invalid template name") {
		t.Errorf("errorMessage() = %q, want Invalid template name prefix", got)
	}

	if got := errorMessage(errors.New("boom")); got != "boom" {
		t.Errorf("errorMessage() = %q, want boom", got)
	}
}

func TestInit_InvalidTemplateHasNoSideEffects(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	_, err := executeCommand(t, "init",
		"--templates", filepath.Join(dir, "no-templates"),
		"-n", "demo", "-t", "React",
		"-c", "/src/components", "-m", "/src/models", "-s", "/src/services", "-g", "/src/graphql",
		"--install=false",
	)

	var notFound *templates.TemplateNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want TemplateNotFoundError", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("workdir not empty after failed init: %d entries", len(entries))
	}
}

func TestComponentCommand(t *testing.T) {
	dir := inProject(t, project.TypeReact)
	t.Cleanup(func() { componentFunctional, componentUseState, componentUseEffect = false, false, false })

	out, err := executeCommand(t, "c", "NavBar", "-s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := filepath.Join(dir, "src", "components", "NavBar", "NavBar.jsx")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("component not written: %v", err)
	}
	if !strings.Contains(string(data), "useState") {
		t.Errorf("component missing useState:\n%s", data)
	}
	if !strings.Contains(out, filepath.Join("src", "components", "NavBar", "NavBar.jsx")) {
		t.Errorf("output does not list the new file:\n%s", out)
	}
}

func TestGeneratorCommands(t *testing.T) {
	dir := inProject(t, project.TypeVue)

	tests := []struct {
		args []string
		path string
	}{
		{[]string{"model", "user"}, filepath.Join("src", "models", "User.js")},
		{[]string{"s", "user"}, filepath.Join("src", "services", "user.service.js")},
		{[]string{"schema", "user"}, filepath.Join("src", "graphql", "user", "typeDefs.graphql")},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			if _, err := executeCommand(t, tt.args...); err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			if _, err := os.Stat(filepath.Join(dir, tt.path)); err != nil {
				t.Errorf("%s not created: %v", tt.path, err)
			}
		})
	}
}

func TestGeneratorWithoutManifest(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := executeCommand(t, "model", "user")
	if !errors.Is(err, project.ErrNoManifest) {
		t.Errorf("err = %v, want ErrNoManifest", err)
	}
}

func TestGeneratorRequiresName(t *testing.T) {
	inProject(t, project.TypeReact)

	if _, err := executeCommand(t, "model"); err == nil {
		t.Error("expected error when name is missing")
	}
}

func TestConfigHelpListsEnvOverrides(t *testing.T) {
	long := configLong()
	for _, want := range []string{"templates_dir", "JCLI_TEMPLATES_DIR", "defaults.componentDir", "JCLI_DEFAULTS_COMPONENTDIR"} {
		if !strings.Contains(long, want) {
			t.Errorf("config help missing %q:\n%s", want, long)
		}
	}
}

// chdir changes the working directory to dir for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if filepath.IsAbs(dir) {
		t.Setenv("PWD", dir)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testing.Chdir: " + err.Error())
		}
	})
}
