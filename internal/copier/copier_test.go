package copier

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestCopyRecursive(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "package.json"), `{"name":"tpl"}`)
	writeFile(t, filepath.Join(src, "src", "App.jsx"), "export default App")
	writeFile(t, filepath.Join(src, "public", "index.html"), "<html></html>")

	result, err := Copy(context.Background(), src, dst)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}

	for _, rel := range []string{"package.json", "src/App.jsx", "public/index.html"} {
		if _, err := os.Stat(filepath.Join(dst, filepath.FromSlash(rel))); err != nil {
			t.Errorf("%s not copied: %v", rel, err)
		}
	}

	copied := append([]string(nil), result.Copied...)
	sort.Strings(copied)
	want := []string{"package.json", "public/index.html", "src/App.jsx"}
	if !reflect.DeepEqual(copied, want) {
		t.Errorf("Copied = %v, want %v", copied, want)
	}
	if len(result.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", result.Skipped)
	}
}

func TestCopyNeverOverwrites(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "template version")
	writeFile(t, filepath.Join(src, "b.txt"), "new file")
	writeFile(t, filepath.Join(dst, "a.txt"), "user version")

	result, err := Copy(context.Background(), src, dst)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}

	if got := readFile(t, filepath.Join(dst, "a.txt")); got != "user version" {
		t.Errorf("a.txt was overwritten: %q", got)
	}
	if got := readFile(t, filepath.Join(dst, "b.txt")); got != "new file" {
		t.Errorf("b.txt = %q, want %q", got, "new file")
	}
	if !reflect.DeepEqual(result.Skipped, []string{"a.txt"}) {
		t.Errorf("Skipped = %v, want [a.txt]", result.Skipped)
	}
}

func TestCopyMergesIntoExistingDirectories(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "src", "index.js"), "template")
	writeFile(t, filepath.Join(dst, "src", "mine.js"), "user")

	if _, err := Copy(context.Background(), src, dst); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	if got := readFile(t, filepath.Join(dst, "src", "mine.js")); got != "user" {
		t.Errorf("existing file changed: %q", got)
	}
	if got := readFile(t, filepath.Join(dst, "src", "index.js")); got != "template" {
		t.Errorf("index.js = %q, want template content", got)
	}
}

func TestCopySkipsFileBlockingDirectory(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "docs", "README.md"), "docs")
	writeFile(t, filepath.Join(dst, "docs"), "a file named docs")

	result, err := Copy(context.Background(), src, dst)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if got := readFile(t, filepath.Join(dst, "docs")); got != "a file named docs" {
		t.Errorf("blocking file changed: %q", got)
	}
	if !reflect.DeepEqual(result.Skipped, []string{"docs"}) {
		t.Errorf("Skipped = %v, want [docs]", result.Skipped)
	}
}

func TestCopyExcludesDSStore(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, ".DS_Store"), "")
	writeFile(t, filepath.Join(src, ".gitignore"), "node_modules\n")

	if _, err := Copy(context.Background(), src, dst); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, ".DS_Store")); err == nil {
		t.Error(".DS_Store should not be copied")
	}
	if _, err := os.Stat(filepath.Join(dst, ".gitignore")); err != nil {
		t.Error(".gitignore should be copied")
	}
}

func TestCopyMissingSource(t *testing.T) {
	_, err := Copy(context.Background(), filepath.Join(t.TempDir(), "missing"), t.TempDir())

	var ce *CopyError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CopyError, got %v", err)
	}
	if ce.Op != "read" {
		t.Errorf("Op = %q, want %q", ce.Op, "read")
	}
}

func TestCopyCancelled(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Copy(ctx, src, t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestShouldExclude(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{".DS_Store", true},
		{"package.json", false},
		{".gitignore", false},
		{"src", false},
	}

	for _, tt := range tests {
		if got := shouldExclude(tt.name); got != tt.expected {
			t.Errorf("shouldExclude(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
