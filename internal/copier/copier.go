// Package copier copies template trees into a project directory. Copies are
// no-clobber: any destination path that already exists is left untouched and
// reported as skipped.
package copier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// excludedNames are never copied out of a template.
var excludedNames = map[string]bool{
	".DS_Store": true,
}

// CopyError reports a filesystem failure while copying.
type CopyError struct {
	Op   string // "read", "mkdir", "write"
	Path string
	Err  error
}

// Error implements the error interface.
func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *CopyError) Unwrap() error {
	return e.Err
}

// Result lists what a copy did, as paths relative to the destination root.
type Result struct {
	Copied  []string
	Skipped []string
}

// Copy recursively copies src into dst without overwriting existing files.
// The context is checked between entries.
func Copy(ctx context.Context, src, dst string) (*Result, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return nil, &CopyError{Op: "read", Path: src, Err: err}
	}
	if !srcInfo.IsDir() {
		return nil, &CopyError{Op: "read", Path: src, Err: errors.New("source is not a directory")}
	}

	c := &copier{ctx: ctx, srcRoot: src, dstRoot: dst, result: &Result{}}
	if err := c.copyDir(src, dst, srcInfo.Mode().Perm()); err != nil {
		return c.result, err
	}
	return c.result, nil
}

type copier struct {
	ctx     context.Context
	srcRoot string
	dstRoot string
	result  *Result
}

func (c *copier) copyDir(src, dst string, perm fs.FileMode) error {
	if err := os.MkdirAll(dst, perm|0700); err != nil {
		return &CopyError{Op: "mkdir", Path: dst, Err: err}
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return &CopyError{Op: "read", Path: src, Err: err}
	}

	for _, entry := range entries {
		if err := c.ctx.Err(); err != nil {
			return err
		}
		if shouldExclude(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			info, err := entry.Info()
			if err != nil {
				return &CopyError{Op: "read", Path: srcPath, Err: err}
			}
			if existing, err := os.Lstat(dstPath); err == nil && !existing.IsDir() {
				c.skip(dstPath)
				continue
			}
			if err := c.copyDir(srcPath, dstPath, info.Mode().Perm()); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := c.copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
		// Symlinks and other special files are not part of a template.
	}
	return nil
}

// copyFile copies a single file, preserving permissions. O_EXCL makes the
// existence check and the create a single step.
func (c *copier) copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &CopyError{Op: "read", Path: src, Err: err}
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return &CopyError{Op: "read", Path: src, Err: err}
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if errors.Is(err, fs.ErrExist) {
		c.skip(dst)
		return nil
	}
	if err != nil {
		return &CopyError{Op: "write", Path: dst, Err: err}
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return &CopyError{Op: "write", Path: dst, Err: err}
	}
	if err := out.Close(); err != nil {
		return &CopyError{Op: "write", Path: dst, Err: err}
	}

	c.result.Copied = append(c.result.Copied, c.rel(dst))
	return nil
}

func (c *copier) skip(dst string) {
	c.result.Skipped = append(c.result.Skipped, c.rel(dst))
}

func (c *copier) rel(dst string) string {
	if r, err := filepath.Rel(c.dstRoot, dst); err == nil {
		return filepath.ToSlash(r)
	}
	return dst
}

// shouldExclude returns true if the name should be excluded during copy.
func shouldExclude(name string) bool {
	return excludedNames[name]
}
