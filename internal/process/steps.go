package process

import (
	"context"
	"os"
	"path/filepath"
)

// Supported package managers.
const (
	NPM  = "npm"
	Yarn = "yarn"
	PNPM = "pnpm"
)

// lockfiles maps lockfile names to the package manager that owns them, in
// detection order.
var lockfiles = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
}

// InitRepository runs `git init` in dir.
func InitRepository(ctx context.Context, r Runner, dir string) error {
	return r.Run(ctx, dir, "git", "init")
}

// DetectPackageManager picks the package manager for dir. A non-empty
// preferred value wins; otherwise the first lockfile found decides, with
// npm as the fallback.
func DetectPackageManager(dir, preferred string) string {
	if preferred != "" {
		return preferred
	}
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
			return lf.manager
		}
	}
	return NPM
}

// InstallDependencies runs `<manager> install` in dir.
func InstallDependencies(ctx context.Context, r Runner, dir, manager string) error {
	if manager == "" {
		manager = DetectPackageManager(dir, "")
	}
	return r.Run(ctx, dir, manager, "install")
}
