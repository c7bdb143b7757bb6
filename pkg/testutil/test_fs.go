package testutil

import (
	"path/filepath"
	"testing"

	"github.com/muffin-cms/muffin/pkg/filesystem"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteTree writes files (relative slash path -> content) below root on fsys.
func WriteTree(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent of %s: %v", path, err)
		}
		if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
}

// ReadFS reads a file from fsys, failing the test on error.
func ReadFS(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// ExistsFS reports whether path exists on fsys.
func ExistsFS(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
