package cli

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jcli-dev/jcli/internal/project"
	"github.com/jcli-dev/jcli/internal/templates"
	"github.com/jcli-dev/jcli/internal/toolchain"
)

// stubProber reports every program at a fixed version.
type stubProber struct {
	versions map[string]string
}

func (s stubProber) LookPath(name string) (string, error) {
	if _, ok := s.versions[name]; ok {
		return "/usr/bin/" + name, nil
	}
	return "", exec.ErrNotFound
}

func (s stubProber) Output(_ context.Context, path string, _ ...string) (string, error) {
	return s.versions[filepath.Base(path)] + "\n", nil
}

func useProber(t *testing.T, versions map[string]string) {
	t.Helper()
	prev := doctorProber
	doctorProber = stubProber{versions: versions}
	t.Cleanup(func() { doctorProber = prev })
}

func healthyToolchain() map[string]string {
	return map[string]string{"git": "git version 2.43.0", "node": "v20.11.1", "npm": "10.2.4"}
}

// templateRootWith creates a template root holding the named directories.
func templateRootWith(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, n := range names {
		if err := os.MkdirAll(filepath.Join(root, n), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func inEmptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	return dir
}

func TestDoctor_AllHealthy(t *testing.T) {
	inEmptyDir(t)
	useProber(t, healthyToolchain())

	out, err := executeCommand(t, "doctor", "--templates", templateRootWith(t, "react", "vue", "angular"))
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	for _, want := range []string{
		"[ OK ] git 2.43.0",
		"[ OK ] node 20.11.1",
		"[INFO] yarn not found (optional)",
		"[ OK ] React",
		"[ OK ] Vue",
		"[INFO] angular: template directory without a project type",
		"[INFO] No project manifest",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctor_MissingTemplates(t *testing.T) {
	dir := inEmptyDir(t)
	useProber(t, healthyToolchain())

	out, err := executeCommand(t, "doctor", "--templates", filepath.Join(dir, "missing"))

	var notFound *templates.TemplateNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want TemplateNotFoundError", err)
	}
	if !strings.Contains(out, "[FAIL] React") || !strings.Contains(out, "[FAIL] Vue") {
		t.Errorf("output missing [FAIL] template lines:\n%s", out)
	}
	if !strings.Contains(out, "[INFO] No project manifest") {
		t.Errorf("missing manifest should be informational:\n%s", out)
	}
}

func TestDoctor_InvalidManifest(t *testing.T) {
	dir := inEmptyDir(t)
	useProber(t, healthyToolchain())
	bad := `{"name": "demo", "projectType": "Angular"}`
	if err := os.WriteFile(filepath.Join(dir, "jcli.json"), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "doctor", "--templates", templateRootWith(t, "react", "vue"))

	var verr *project.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if !strings.Contains(out, "validation issue(s)") {
		t.Errorf("output missing validation issues:\n%s", out)
	}
	if !strings.Contains(out, "/projectType") {
		t.Errorf("output does not name the bad field:\n%s", out)
	}
}

func TestDoctor_ValidManifest(t *testing.T) {
	inProject(t, project.TypeVue)
	useProber(t, healthyToolchain())

	out, err := executeCommand(t, "doctor", "--templates", templateRootWith(t, "react", "vue"))
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "[ OK ] Valid Vue project: demo") {
		t.Errorf("output missing manifest OK line:\n%s", out)
	}
}

func TestDoctor_OutdatedToolchain(t *testing.T) {
	inEmptyDir(t)
	versions := healthyToolchain()
	versions["node"] = "v12.22.0"
	delete(versions, "git")
	useProber(t, versions)

	out, err := executeCommand(t, "doctor", "--templates", templateRootWith(t, "react", "vue"))
	if !errors.Is(err, toolchain.ErrUnhealthy) {
		t.Fatalf("err = %v, want ErrUnhealthy", err)
	}
	if !strings.Contains(out, "[FAIL] node 12.22.0, need >= 14.0.0") {
		t.Errorf("output missing outdated node line:\n%s", out)
	}
	if !strings.Contains(out, "[MISS] git not found") {
		t.Errorf("output missing git line:\n%s", out)
	}
}
