package testutil

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/muffin-cms/muffin/pkg/types"
)

// FailingFS wraps a types.FS and injects errors for selected operations.
// Paths are matched by suffix so tests can name files without knowing the
// full target directory.
type FailingFS struct {
	types.FS

	FailWrite map[string]error
	FailRead  map[string]error
	FailMkdir map[string]error
	FailWalk  error
}

// NewFailingFS wraps base.
func NewFailingFS(base types.FS) *FailingFS {
	return &FailingFS{
		FS:        base,
		FailWrite: map[string]error{},
		FailRead:  map[string]error{},
		FailMkdir: map[string]error{},
	}
}

func match(rules map[string]error, path string) error {
	slashed := filepath.ToSlash(path)
	for suffix, err := range rules {
		if strings.HasSuffix(slashed, suffix) {
			return err
		}
	}
	return nil
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := match(f.FailWrite, name); err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) ReadFile(name string) ([]byte, error) {
	if err := match(f.FailRead, name); err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return f.FS.ReadFile(name)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := match(f.FailMkdir, path); err != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: err}
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailingFS) Walk(root string, fn filepath.WalkFunc) error {
	if f.FailWalk != nil {
		return fn(root, nil, f.FailWalk)
	}
	return f.FS.Walk(root, fn)
}
