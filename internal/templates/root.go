package templates

import (
	"os"
	"path/filepath"
)

// DirName is the directory holding the bundled templates.
const DirName = "templates"

// DefaultRoot picks the template root. An explicit value (flag or config)
// wins; otherwise the first existing candidate next to the executable is
// used, then ./templates relative to the working directory.
func DefaultRoot(explicit string) string {
	if explicit != "" {
		return explicit
	}

	for _, candidate := range candidateRoots() {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return DirName
}

func candidateRoots() []string {
	var roots []string
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir := filepath.Dir(exe)
		roots = append(roots,
			filepath.Join(dir, DirName),
			filepath.Join(dir, "..", "share", "jcli", DirName),
		)
	}
	if cwd, err := os.Getwd(); err == nil {
		roots = append(roots, filepath.Join(cwd, DirName))
	}
	return roots
}
