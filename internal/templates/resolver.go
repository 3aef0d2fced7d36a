// Package templates locates the project template directories copied by
// `jcli init`. A template is an opaque directory tree named after the
// lower-cased project type (templates/react, templates/vue).
package templates

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TemplateNotFoundError is returned when a project type has no readable
// template directory.
type TemplateNotFoundError struct {
	Type string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("invalid template name %q: %s is not a readable template directory", e.Type, e.Path)
}

// Unwrap returns the underlying error.
func (e *TemplateNotFoundError) Unwrap() error {
	return e.Err
}

// ErrNotDirectory is wrapped by TemplateNotFoundError when the template path
// exists but is a regular file.
var ErrNotDirectory = errors.New("not a directory")

// Resolver maps project types to template directories under Root.
type Resolver struct {
	Root string
}

// Path returns the template directory for projectType without checking it.
func (r Resolver) Path(projectType string) string {
	return filepath.Join(r.Root, strings.ToLower(projectType))
}

// Resolve returns the template directory for projectType after verifying it
// is a directory the process can read.
func (r Resolver) Resolve(projectType string) (string, error) {
	dir := r.Path(projectType)
	if strings.TrimSpace(projectType) == "" {
		return "", &TemplateNotFoundError{Type: projectType, Path: dir, Err: os.ErrNotExist}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", &TemplateNotFoundError{Type: projectType, Path: dir, Err: err}
	}
	if !info.IsDir() {
		return "", &TemplateNotFoundError{Type: projectType, Path: dir, Err: ErrNotDirectory}
	}

	// Stat succeeds on unreadable directories; opening proves read access.
	f, err := os.Open(dir)
	if err != nil {
		return "", &TemplateNotFoundError{Type: projectType, Path: dir, Err: err}
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return "", &TemplateNotFoundError{Type: projectType, Path: dir, Err: err}
	}

	return dir, nil
}

// Available lists the template names found under Root, sorted.
func (r Resolver) Available() ([]string, error) {
	entries, err := os.ReadDir(r.Root)
	if err != nil {
		return nil, fmt.Errorf("reading template root %s: %w", r.Root, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
